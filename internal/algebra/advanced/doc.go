// Package advanced layers numerical calculus on top of the symbolic core.
//
// Everything here is composed purely from algebra.Evaluate and
// algebra.Differentiate: Taylor polynomials, critical-point search, arc
// length and surface of revolution by Gauss-Legendre quadrature
// (gonum.org/v1/gonum/integrate/quad), gradients, directional derivatives,
// and Lagrange-multiplier system setup. Results are numerical
// approximations except where a function documents otherwise.
package advanced
