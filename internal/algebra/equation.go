package algebra

// Product is an ordered list of fractions meant to be multiplied. The
// multiplication is not carried out until Expand is called; order only
// matters for determinism of expansion, not for meaning.
type Product []Fraction

// NewProduct builds a product from deep copies of the given fractions.
func NewProduct(fractions ...Fraction) Product {
	return cloneFractions(fractions)
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	return cloneFractions(p)
}

// Expand left-folds pairwise expansion across the product, collapsing it
// into one fraction. An empty product expands to the multiplicative
// identity; a single-fraction product is returned as-is, unsimplified.
func (p Product) Expand() (Fraction, error) {
	switch len(p) {
	case 0:
		return One(), nil
	case 1:
		return p[0].Clone(), nil
	}

	result := p[0]
	for _, fraction := range p[1:] {
		expanded, err := Expand(result, fraction)
		if err != nil {
			return Fraction{}, err
		}
		result = expanded
	}
	return result, nil
}

// Evaluate multiplies the values of all fractions under the given
// bindings. An empty product evaluates to 1.
func (p Product) Evaluate(bindings map[string]float64) (float64, error) {
	result := 1.0
	for _, fraction := range p {
		value, err := fraction.Evaluate(bindings)
		if err != nil {
			return 0, err
		}
		result *= value
	}
	return result, nil
}

// Simplify collects like terms within each fraction independently. It does
// not combine terms across fractions; expand first for full normalization.
func (p Product) Simplify() Product {
	simplified := make(Product, 0, len(p))
	for _, fraction := range p {
		simplified = append(simplified, fraction.Simplify())
	}
	return simplified
}

// Equation is an ordered list of products meant to be summed. Order is
// irrelevant to meaning but preserved for determinism.
type Equation []Product

// NewEquation builds an equation from deep copies of the given products.
func NewEquation(products ...Product) Equation {
	cloned := make(Equation, 0, len(products))
	for _, product := range products {
		cloned = append(cloned, product.Clone())
	}
	return cloned
}

// Clone returns a deep copy of the equation.
func (e Equation) Clone() Equation {
	return NewEquation(e...)
}

// Evaluate sums the values of all products under the given bindings. An
// empty equation evaluates to 0.
func (e Equation) Evaluate(bindings map[string]float64) (float64, error) {
	result := 0.0
	for _, product := range e {
		value, err := product.Evaluate(bindings)
		if err != nil {
			return 0, err
		}
		result += value
	}
	return result, nil
}

// Simplify collects like terms within each fraction of each product.
func (e Equation) Simplify() Equation {
	simplified := make(Equation, 0, len(e))
	for _, product := range e {
		simplified = append(simplified, product.Simplify())
	}
	return simplified
}

func cloneFractions(fractions []Fraction) []Fraction {
	cloned := make([]Fraction, 0, len(fractions))
	for _, fraction := range fractions {
		cloned = append(cloned, fraction.Clone())
	}
	return cloned
}
