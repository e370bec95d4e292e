package algebra

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Wire format:
//
//	term:     {"coefficient": 2, "powers": {"x": 3}}
//	fraction: {"numerator": {"terms": [term, ...]}, "denominator": 1}
//	product:  [fraction, ...]
//	equation: [product, ...]
//
// A missing "powers" is a constant term; a missing "denominator" defaults
// to 1. Decoding validates the structural invariants: exponents must be
// non-negative integers, zero-power keys are stripped, and a literal zero
// denominator is rejected.

type termWire struct {
	Coefficient float64            `json:"coefficient"`
	Powers      map[string]float64 `json:"powers,omitempty"`
}

type numeratorWire struct {
	Terms []termWire `json:"terms"`
}

type fractionWire struct {
	Numerator   numeratorWire `json:"numerator"`
	Denominator *float64      `json:"denominator,omitempty"`
}

// MarshalFraction encodes a fraction into its wire form.
func MarshalFraction(f Fraction) ([]byte, error) {
	return sonic.Marshal(fractionToWire(f))
}

// UnmarshalFraction decodes and validates a wire-form fraction.
func UnmarshalFraction(data []byte) (Fraction, error) {
	var wire fractionWire
	if err := sonic.Unmarshal(data, &wire); err != nil {
		return Fraction{}, fmt.Errorf("decode fraction: %w", err)
	}
	return fractionFromWire(wire)
}

// MarshalProduct encodes a product as an array of wire-form fractions.
func MarshalProduct(p Product) ([]byte, error) {
	return sonic.Marshal(productToWire(p))
}

// UnmarshalProduct decodes and validates a wire-form product.
func UnmarshalProduct(data []byte) (Product, error) {
	var wire []fractionWire
	if err := sonic.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return productFromWire(wire)
}

// MarshalEquation encodes an equation as an array of wire-form products.
func MarshalEquation(e Equation) ([]byte, error) {
	wire := make([][]fractionWire, 0, len(e))
	for _, product := range e {
		wire = append(wire, productToWire(product))
	}
	return sonic.Marshal(wire)
}

// UnmarshalEquation decodes and validates a wire-form equation.
func UnmarshalEquation(data []byte) (Equation, error) {
	var wire [][]fractionWire
	if err := sonic.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode equation: %w", err)
	}
	equation := make(Equation, 0, len(wire))
	for _, productWire := range wire {
		product, err := productFromWire(productWire)
		if err != nil {
			return nil, err
		}
		equation = append(equation, product)
	}
	return equation, nil
}

func fractionToWire(f Fraction) fractionWire {
	terms := make([]termWire, 0, len(f.Numerator))
	for _, term := range f.Numerator {
		wire := termWire{Coefficient: term.Coefficient}
		if len(term.Powers) > 0 {
			wire.Powers = make(map[string]float64, len(term.Powers))
			for name, power := range term.Powers {
				wire.Powers[name] = float64(power)
			}
		}
		terms = append(terms, wire)
	}
	denominator := f.denominator()
	return fractionWire{Numerator: numeratorWire{Terms: terms}, Denominator: &denominator}
}

func fractionFromWire(wire fractionWire) (Fraction, error) {
	denominator := 1.0
	if wire.Denominator != nil {
		if *wire.Denominator == 0 {
			return Fraction{}, fmt.Errorf("decode fraction: denominator cannot be zero")
		}
		denominator = *wire.Denominator
	}

	terms := make([]Term, 0, len(wire.Numerator.Terms))
	for _, tw := range wire.Numerator.Terms {
		term := Term{Coefficient: tw.Coefficient}
		for name, power := range tw.Powers {
			if power != float64(int(power)) || power < 0 {
				return Fraction{}, fmt.Errorf("decode fraction: exponent %g of %q is not a non-negative integer", power, name)
			}
			if power == 0 {
				continue
			}
			if term.Powers == nil {
				term.Powers = make(map[string]int, len(tw.Powers))
			}
			term.Powers[name] = int(power)
		}
		terms = append(terms, term)
	}
	return Fraction{Numerator: terms, Denominator: denominator}, nil
}

func productToWire(p Product) []fractionWire {
	wire := make([]fractionWire, 0, len(p))
	for _, fraction := range p {
		wire = append(wire, fractionToWire(fraction))
	}
	return wire
}

func productFromWire(wire []fractionWire) (Product, error) {
	product := make(Product, 0, len(wire))
	for _, fw := range wire {
		fraction, err := fractionFromWire(fw)
		if err != nil {
			return nil, err
		}
		product = append(product, fraction)
	}
	return product, nil
}
