// Package algebra exposes the symbolic algebra core as a tool provider.
//
// Tools are grouped into modules: structural operations (evaluate,
// simplify, expand, polynomial), calculus (differentiate, integrate,
// definite and region integration), and analysis (Taylor polynomials,
// critical points, quadrature-backed geometry, gradients, Lagrange
// systems). Expressions cross the boundary in the wire JSON form and
// results carry both the transformed tree and its rendered string.
package algebra
