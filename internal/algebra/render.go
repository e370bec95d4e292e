package algebra

import (
	"strconv"
	"strings"
)

// Rendering is read-only and deterministic: terms print in the order they
// are stored, and a term's variables print in lexicographic order. No
// canonical re-sorting of terms is performed.

func (t Term) String() string {
	if t.IsConstant() {
		return formatNumber(t.Coefficient)
	}

	var b strings.Builder
	switch t.Coefficient {
	case 1:
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(formatNumber(t.Coefficient))
	}
	for _, name := range t.Variables() {
		b.WriteString(name)
		if power := t.Powers[name]; power != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(power))
		}
	}
	return b.String()
}

func (f Fraction) String() string {
	if len(f.Numerator) == 0 {
		return "0"
	}

	var b strings.Builder
	for i, term := range f.Numerator {
		rendered := term.String()
		if i == 0 {
			b.WriteString(rendered)
			continue
		}
		if trimmed, negative := strings.CutPrefix(rendered, "-"); negative {
			b.WriteString(" - ")
			b.WriteString(trimmed)
		} else {
			b.WriteString(" + ")
			b.WriteString(rendered)
		}
	}

	if d := f.denominator(); d != 1 {
		return "(" + b.String() + ") / " + formatNumber(d)
	}
	return b.String()
}

func (p Product) String() string {
	if len(p) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(p))
	for _, fraction := range p {
		parts = append(parts, "("+fraction.String()+")")
	}
	return strings.Join(parts, "")
}

func (e Equation) String() string {
	if len(e) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(e))
	for _, product := range e {
		parts = append(parts, product.String())
	}
	return strings.Join(parts, " + ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
