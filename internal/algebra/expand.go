package algebra

// Expand distributes the product of two fractions into a single simplified
// fraction: every term of a's numerator is multiplied with every term of
// b's numerator and like terms are collected. Both fractions must have
// denominator 1; rational-function multiplication is not implemented.
func Expand(a, b Fraction) (Fraction, error) {
	if a.denominator() != 1 {
		return Fraction{}, &UnsupportedDenominatorError{Operation: "expand", Denominator: a.denominator()}
	}
	if b.denominator() != 1 {
		return Fraction{}, &UnsupportedDenominatorError{Operation: "expand", Denominator: b.denominator()}
	}

	terms := make([]Term, 0, len(a.Numerator)*len(b.Numerator))
	for _, left := range a.Numerator {
		for _, right := range b.Numerator {
			terms = append(terms, left.Multiply(right))
		}
	}
	return Fraction{Numerator: terms, Denominator: 1}.Simplify(), nil
}

// One is the multiplicative identity: the constant fraction 1/1.
func One() Fraction {
	return Fraction{Numerator: []Term{{Coefficient: 1}}, Denominator: 1}
}
