package algebra

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Term is the atomic monomial unit: a coefficient times a product of
// variable powers. An empty (or nil) Powers map means the term is a
// constant. Exponents are always non-negative integers; a variable never
// appears with exponent zero.
//
// Transformations return fresh terms with copied Powers maps. Callers can
// hold references to an input tree and its transformed output without
// either aliasing the other.
type Term struct {
	Coefficient float64        `json:"coefficient"`
	Powers      map[string]int `json:"powers,omitempty"`
}

// Clone returns a deep copy of the term.
func (t Term) Clone() Term {
	return Term{Coefficient: t.Coefficient, Powers: clonePowers(t.Powers)}
}

// IsConstant reports whether the term carries no variables.
func (t Term) IsConstant() bool {
	return len(t.Powers) == 0
}

// Variables returns the term's variable names in lexicographic order.
func (t Term) Variables() []string {
	names := make([]string, 0, len(t.Powers))
	for name := range t.Powers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate substitutes bindings into the term and returns
// coefficient * Π bindings[v]^power. A constant term evaluates to its
// coefficient regardless of bindings. Evaluation fails fast with
// MissingVariableError when any variable lacks a binding; variables are
// checked in lexicographic order so the failing variable is deterministic.
func (t Term) Evaluate(bindings map[string]float64) (float64, error) {
	result := t.Coefficient
	for _, name := range t.Variables() {
		value, ok := bindings[name]
		if !ok {
			return 0, &MissingVariableError{Variable: name}
		}
		result *= math.Pow(value, float64(t.Powers[name]))
	}
	return result, nil
}

// Differentiate applies the multivariable power rule with respect to
// variable. A term not containing the variable differentiates to the zero
// term. When the variable's power drops to zero its key is removed, so x
// differentiates to a bare constant, not x^0.
func (t Term) Differentiate(variable string) Term {
	power, ok := t.Powers[variable]
	if !ok {
		return Term{}
	}

	powers := clonePowers(t.Powers)
	if power == 1 {
		delete(powers, variable)
		if len(powers) == 0 {
			powers = nil
		}
	} else {
		powers[variable] = power - 1
	}
	return Term{Coefficient: t.Coefficient * float64(power), Powers: powers}
}

// Integrate applies the reverse power rule with respect to variable: the
// power is raised by one (inserting the variable when absent) and the
// coefficient divided by the new power. Powers are non-negative, so the
// divisor is at least one; a hand-built term with exponent -1 would need a
// logarithm, which this model cannot represent, and is not validated
// against.
func (t Term) Integrate(variable string) Term {
	power := t.Powers[variable]

	powers := clonePowers(t.Powers)
	if powers == nil {
		powers = make(map[string]int, 1)
	}
	powers[variable] = power + 1
	return Term{Coefficient: t.Coefficient / float64(power+1), Powers: powers}
}

// IntegrateDefinite integrates the term with respect to variable and
// applies the Fundamental Theorem of Calculus over [lower, upper]. The
// integration variable is consumed: it no longer appears in the result.
func (t Term) IntegrateDefinite(lower, upper float64, variable string) Term {
	integrated := t.Integrate(variable)
	power := integrated.Powers[variable]

	boundDiff := math.Pow(upper, float64(power)) - math.Pow(lower, float64(power))
	powers := clonePowers(integrated.Powers)
	delete(powers, variable)
	if len(powers) == 0 {
		powers = nil
	}
	return Term{Coefficient: integrated.Coefficient * boundDiff, Powers: powers}
}

// Multiply returns the product of two terms: coefficients multiply and
// exponents of shared variables add.
func (t Term) Multiply(other Term) Term {
	powers := clonePowers(t.Powers)
	if powers == nil && len(other.Powers) > 0 {
		powers = make(map[string]int, len(other.Powers))
	}
	for name, power := range other.Powers {
		powers[name] += power
	}
	return Term{Coefficient: t.Coefficient * other.Coefficient, Powers: powers}
}

// powersKey builds a canonical grouping key from the sorted
// (variable, power) pairs. Two terms are like terms exactly when their
// keys match. The key is value-based, independent of map iteration order.
func (t Term) powersKey() string {
	if len(t.Powers) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range t.Variables() {
		b.WriteString(name)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(t.Powers[name]))
		b.WriteByte(',')
	}
	return b.String()
}

func clonePowers(powers map[string]int) map[string]int {
	if powers == nil {
		return nil
	}
	cloned := make(map[string]int, len(powers))
	for name, power := range powers {
		cloned[name] = power
	}
	return cloned
}
