package advanced

import (
	"fmt"
	"math"

	"github.com/polycalc/polycalc/internal/algebra"
	"gonum.org/v1/gonum/integrate/quad"
)

// quadNodes is the Gauss-Legendre node count. Generous for the smooth
// integrands produced by polynomial derivatives.
const quadNodes = 200

// ArcLength numerically computes the arc length of the curve y = f(v) over
// [lower, upper]:
//
//	∫ √(1 + f'(v)²) dv
//
// The integrand is not polynomial, so this is quadrature, not symbolic
// integration. f must be a single-variable fraction in the given variable.
func ArcLength(f algebra.Fraction, variable string, lower, upper float64) (float64, error) {
	slope, err := derivativeFunc(f, variable, "arc length")
	if err != nil {
		return 0, err
	}

	integrand := func(x float64) float64 {
		d := slope(x)
		return math.Sqrt(1 + d*d)
	}
	return quad.Fixed(integrand, lower, upper, quadNodes, quad.Legendre{}, 0), nil
}

// SurfaceOfRevolution numerically computes the area swept by revolving
// y = f(v) on [lower, upper] around the axis:
//
//	2π ∫ |f(v)| √(1 + f'(v)²) dv
func SurfaceOfRevolution(f algebra.Fraction, variable string, lower, upper float64) (float64, error) {
	slope, err := derivativeFunc(f, variable, "surface of revolution")
	if err != nil {
		return 0, err
	}
	height := singleVariableFunc(f, variable)

	integrand := func(x float64) float64 {
		d := slope(x)
		return math.Abs(height(x)) * math.Sqrt(1+d*d)
	}
	return 2 * math.Pi * quad.Fixed(integrand, lower, upper, quadNodes, quad.Legendre{}, 0), nil
}

func derivativeFunc(f algebra.Fraction, variable, operation string) (func(float64) float64, error) {
	if err := requireOnlyVariable(f, variable, operation); err != nil {
		return nil, err
	}
	derived, err := f.Differentiate(variable)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return singleVariableFunc(derived.Simplify(), variable), nil
}
