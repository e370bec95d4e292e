// Package algebra is a symbolic calculus core for multivariable polynomial
// expressions with floating-point coefficients.
//
// Expressions are structured data, not strings:
//   - Term: coefficient × product of variable powers
//   - Fraction: sum of terms over a constant denominator
//   - Product: ordered fractions meant to be multiplied
//   - Equation: ordered products meant to be summed
//
// Transformations are pure: every operation returns a fresh tree (or a
// scalar) and never mutates its input, so callers may transform the same
// source tree several times and may parallelize externally without locks.
//
// Supported operations:
//   - Evaluate: substitute variable bindings, fail fast on a missing one
//   - Differentiate: multivariable power rule (denominator must be 1)
//   - Integrate / IntegrateDefinite: reverse power rule and the
//     Fundamental Theorem of Calculus, one variable at a time
//   - Simplify: like-term collection with deterministic ordering
//   - Expand: distributive expansion of products into one fraction
//   - IntegrateOverRegion: iterated definite integration over ordered
//     per-variable bounds
//
// Out of reach by design: trigonometric, exponential, logarithmic, and
// radical terms; quotient-rule calculus over non-constant denominators;
// exact rational arithmetic; symbolic factoring and equation solving.
package algebra
