package algebra

import "sort"

// Epsilon is the magnitude below which a collected coefficient is treated
// as numerically zero and dropped during simplification.
const Epsilon = 1e-10

// Fraction is a sum of terms (the numerator) over a constant denominator:
// (t1 + t2 + ... + tn) / denominator. Most operations require the
// denominator to be 1; see the individual methods for how non-unit
// denominators are handled.
type Fraction struct {
	Numerator   []Term
	Denominator float64
}

// NewFraction builds a fraction over denominator 1 from deep copies of the
// given terms.
func NewFraction(terms ...Term) Fraction {
	return Fraction{Numerator: cloneTerms(terms), Denominator: 1}
}

// Clone returns a deep copy of the fraction.
func (f Fraction) Clone() Fraction {
	return Fraction{Numerator: cloneTerms(f.Numerator), Denominator: f.Denominator}
}

// Variables returns the sorted union of variable names across the
// numerator terms.
func (f Fraction) Variables() []string {
	seen := make(map[string]bool)
	for _, term := range f.Numerator {
		for name := range term.Powers {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate substitutes bindings into every numerator term, sums the
// results, and divides by the denominator. The first missing binding
// aborts the whole evaluation.
func (f Fraction) Evaluate(bindings map[string]float64) (float64, error) {
	sum := 0.0
	for _, term := range f.Numerator {
		value, err := term.Evaluate(bindings)
		if err != nil {
			return 0, err
		}
		sum += value
	}
	return sum / f.denominator(), nil
}

// Differentiate applies the power rule to every numerator term with
// respect to variable, dropping terms that differentiate to zero. Only
// simple polynomial fractions are supported: a non-unit denominator would
// need the quotient rule and returns UnsupportedDenominatorError.
func (f Fraction) Differentiate(variable string) (Fraction, error) {
	if f.denominator() != 1 {
		return Fraction{}, &UnsupportedDenominatorError{Operation: "differentiate", Denominator: f.denominator()}
	}

	terms := make([]Term, 0, len(f.Numerator))
	for _, term := range f.Numerator {
		derived := term.Differentiate(variable)
		if derived.Coefficient != 0 {
			terms = append(terms, derived)
		}
	}
	return Fraction{Numerator: terms, Denominator: 1}, nil
}

// Integrate maps the reverse power rule over every numerator term. The
// denominator is carried through unchanged; it is constant and does not
// depend on the integration variable.
func (f Fraction) Integrate(variable string) Fraction {
	terms := make([]Term, 0, len(f.Numerator))
	for _, term := range f.Numerator {
		terms = append(terms, term.Integrate(variable))
	}
	return Fraction{Numerator: terms, Denominator: f.denominator()}
}

// IntegrateDefinite applies term-level definite integration over
// [lower, upper]. A non-unit denominator is not mathematically justified
// here, but the operation stays total: it proceeds, carries the
// denominator through, and reports the caveat as a warning so callers that
// just need a number still get one.
func (f Fraction) IntegrateDefinite(lower, upper float64, variable string) (Fraction, []Warning) {
	var warnings []Warning
	if f.denominator() != 1 {
		warnings = append(warnings, warnInaccurateDenominator(f.denominator()))
	}

	terms := make([]Term, 0, len(f.Numerator))
	for _, term := range f.Numerator {
		terms = append(terms, term.IntegrateDefinite(lower, upper, variable))
	}
	return Fraction{Numerator: terms, Denominator: f.denominator()}, warnings
}

// Simplify collects like terms in the numerator. Terms are alike exactly
// when their powers maps are identical. Coefficients within a group are
// summed; groups whose collected coefficient falls below Epsilon in
// magnitude are dropped. Output order is the order of first appearance of
// each distinct powers shape in the input, which makes simplification
// deterministic and idempotent.
func (f Fraction) Simplify() Fraction {
	order := make([]string, 0, len(f.Numerator))
	groups := make(map[string]Term, len(f.Numerator))

	for _, term := range f.Numerator {
		key := term.powersKey()
		grouped, seen := groups[key]
		if !seen {
			order = append(order, key)
			groups[key] = term.Clone()
			continue
		}
		grouped.Coefficient += term.Coefficient
		groups[key] = grouped
	}

	terms := make([]Term, 0, len(order))
	for _, key := range order {
		grouped := groups[key]
		if grouped.Coefficient < Epsilon && grouped.Coefficient > -Epsilon {
			continue
		}
		terms = append(terms, grouped)
	}
	return Fraction{Numerator: terms, Denominator: f.denominator()}
}

// Bound is one axis of an integration region: the variable together with
// its constant lower and upper limits.
type Bound struct {
	Variable string  `json:"variable"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

// IntegrateOverRegion iterates definite integration over the bounds in the
// exact order given, simplifying after each step and accumulating any
// warnings. For rectangular regions the order is mathematically immaterial,
// but it is never reordered: floating-point summation order can differ in
// the last bits, and the caller's order is part of the contract.
func (f Fraction) IntegrateOverRegion(bounds []Bound) (Fraction, []Warning) {
	result := f.Clone()
	var warnings []Warning
	for _, bound := range bounds {
		var stepWarnings []Warning
		result, stepWarnings = result.IntegrateDefinite(bound.Lower, bound.Upper, bound.Variable)
		warnings = append(warnings, stepWarnings...)
		result = result.Simplify()
	}
	return result, warnings
}

// denominator normalizes the zero value: a fraction built literally with
// no denominator set is treated as denominator 1.
func (f Fraction) denominator() float64 {
	if f.Denominator == 0 {
		return 1
	}
	return f.Denominator
}

func cloneTerms(terms []Term) []Term {
	cloned := make([]Term, 0, len(terms))
	for _, term := range terms {
		cloned = append(cloned, term.Clone())
	}
	return cloned
}
