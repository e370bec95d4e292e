package advanced

import (
	"fmt"

	"github.com/polycalc/polycalc/internal/algebra"
)

// Taylor builds the Taylor polynomial of f around center up to the given
// order, as a symbolic fraction in the same variable:
//
//	Σ_{k=0}^{order} f⁽ᵏ⁾(center)/k! · (v-center)ᵏ
//
// f must depend on no variable other than the expansion variable, since
// each derivative is evaluated at the center point. For polynomial f of
// degree ≤ order the result reproduces f exactly (up to floating error).
func Taylor(f algebra.Fraction, variable string, center float64, order int) (algebra.Fraction, error) {
	if order < 0 {
		return algebra.Fraction{}, fmt.Errorf("taylor: order must be non-negative, got %d", order)
	}

	point := map[string]float64{variable: center}
	current := f.Clone()
	factorial := 1.0

	var terms []algebra.Term
	for k := 0; k <= order; k++ {
		if k > 0 {
			factorial *= float64(k)
		}

		value, err := current.Evaluate(point)
		if err != nil {
			return algebra.Fraction{}, fmt.Errorf("taylor: evaluate derivative %d: %w", k, err)
		}
		coefficient := value / factorial

		basis, err := shiftedPower(variable, center, k)
		if err != nil {
			return algebra.Fraction{}, err
		}
		for _, term := range basis.Numerator {
			scaled := term.Clone()
			scaled.Coefficient *= coefficient
			terms = append(terms, scaled)
		}

		current, err = current.Differentiate(variable)
		if err != nil {
			return algebra.Fraction{}, fmt.Errorf("taylor: derivative %d: %w", k+1, err)
		}
		current = current.Simplify()
	}

	return algebra.Sum(terms...).Simplify(), nil
}

// shiftedPower expands (v-center)^k into a simplified fraction.
func shiftedPower(variable string, center float64, k int) (algebra.Fraction, error) {
	factors := make(algebra.Product, 0, k)
	for i := 0; i < k; i++ {
		factors = append(factors, algebra.Polynomial(variable, -center, 1))
	}
	return factors.Expand()
}
