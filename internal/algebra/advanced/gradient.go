package advanced

import (
	"fmt"

	"github.com/polycalc/polycalc/internal/algebra"
	"gonum.org/v1/gonum/mat"
)

// Gradient returns the vector of simplified partial derivatives of f with
// respect to each variable, in the order given.
func Gradient(f algebra.Fraction, variables []string) ([]algebra.Fraction, error) {
	partials := make([]algebra.Fraction, 0, len(variables))
	for _, variable := range variables {
		partial, err := f.Differentiate(variable)
		if err != nil {
			return nil, fmt.Errorf("gradient with respect to %q: %w", variable, err)
		}
		partials = append(partials, partial.Simplify())
	}
	return partials, nil
}

// GradientAt evaluates the gradient of f at a point, returning one value
// per variable in the order given.
func GradientAt(f algebra.Fraction, variables []string, point map[string]float64) ([]float64, error) {
	partials, err := Gradient(f, variables)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(partials))
	for i, partial := range partials {
		values[i], err = partial.Evaluate(point)
		if err != nil {
			return nil, fmt.Errorf("gradient at point: %w", err)
		}
	}
	return values, nil
}

// DirectionalDerivative computes ∇f(point) · u where u is the given
// direction normalized to unit length.
func DirectionalDerivative(f algebra.Fraction, variables []string, point map[string]float64, direction []float64) (float64, error) {
	if len(direction) != len(variables) {
		return 0, fmt.Errorf("directional derivative: %d direction components for %d variables", len(direction), len(variables))
	}

	values, err := GradientAt(f, variables, point)
	if err != nil {
		return 0, err
	}

	unit := mat.NewVecDense(len(direction), append([]float64(nil), direction...))
	norm := mat.Norm(unit, 2)
	if norm == 0 {
		return 0, fmt.Errorf("directional derivative: direction vector is zero")
	}
	unit.ScaleVec(1/norm, unit)

	return mat.Dot(mat.NewVecDense(len(values), values), unit), nil
}
