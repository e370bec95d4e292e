package advanced

import (
	"fmt"

	"github.com/polycalc/polycalc/internal/algebra"
)

// Stationarity is one component of the Lagrange condition ∇f = λ∇g: the
// partials of the objective and the constraint with respect to a single
// variable.
type Stationarity struct {
	Variable          string
	ObjectivePartial  algebra.Fraction
	ConstraintPartial algebra.Fraction
}

// System is the Lagrange-multiplier system for optimizing an objective
// subject to constraint = 0. It is a symbolic setup only; solving it is up
// to the caller (numerically or by hand).
type System struct {
	Conditions []Stationarity
	Constraint algebra.Fraction
}

// Lagrange builds the stationarity system ∂f/∂v = λ·∂g/∂v for every
// variable v, together with the constraint itself.
func Lagrange(objective, constraint algebra.Fraction, variables []string) (System, error) {
	if len(variables) == 0 {
		return System{}, fmt.Errorf("lagrange: no variables given")
	}

	conditions := make([]Stationarity, 0, len(variables))
	for _, variable := range variables {
		objectivePartial, err := objective.Differentiate(variable)
		if err != nil {
			return System{}, fmt.Errorf("lagrange objective partial %q: %w", variable, err)
		}
		constraintPartial, err := constraint.Differentiate(variable)
		if err != nil {
			return System{}, fmt.Errorf("lagrange constraint partial %q: %w", variable, err)
		}
		conditions = append(conditions, Stationarity{
			Variable:          variable,
			ObjectivePartial:  objectivePartial.Simplify(),
			ConstraintPartial: constraintPartial.Simplify(),
		})
	}
	return System{Conditions: conditions, Constraint: constraint.Clone()}, nil
}
