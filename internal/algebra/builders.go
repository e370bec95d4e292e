package algebra

import "fmt"

// Constant returns the constant term c.
func Constant(c float64) Term {
	return Term{Coefficient: c}
}

// Var returns the term for a bare variable: 1·name^1.
func Var(name string) Term {
	return Term{Coefficient: 1, Powers: map[string]int{name: 1}}
}

// Monomial builds a term c·Πv^p from a coefficient and a powers map.
// Zero-power entries are stripped so the result is canonical; negative
// exponents are not representable and are rejected.
func Monomial(coefficient float64, powers map[string]int) (Term, error) {
	cleaned := make(map[string]int, len(powers))
	for name, power := range powers {
		if power < 0 {
			return Term{}, fmt.Errorf("monomial %s^%d: negative exponents are not supported", name, power)
		}
		if power == 0 {
			continue
		}
		cleaned[name] = power
	}
	if len(cleaned) == 0 {
		return Term{Coefficient: coefficient}, nil
	}
	return Term{Coefficient: coefficient, Powers: cleaned}, nil
}

// Polynomial builds the single-variable polynomial
// coeffs[0] + coeffs[1]·v + coeffs[2]·v² + ... as a fraction over 1.
// Zero coefficients contribute no term. Terms are stored highest degree
// first, which is also how they render.
func Polynomial(variable string, coeffs ...float64) Fraction {
	terms := make([]Term, 0, len(coeffs))
	for degree := len(coeffs) - 1; degree >= 0; degree-- {
		coefficient := coeffs[degree]
		if coefficient == 0 {
			continue
		}
		if degree == 0 {
			terms = append(terms, Term{Coefficient: coefficient})
			continue
		}
		terms = append(terms, Term{Coefficient: coefficient, Powers: map[string]int{variable: degree}})
	}
	return Fraction{Numerator: terms, Denominator: 1}
}

// Sum builds a fraction over denominator 1 from deep copies of the given
// terms.
func Sum(terms ...Term) Fraction {
	return NewFraction(terms...)
}
