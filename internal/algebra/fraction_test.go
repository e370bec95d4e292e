package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFractionEvaluate(t *testing.T) {
	t.Run("polynomial at a root", func(t *testing.T) {
		// x^2 - 4x + 4 has a double root at 2
		f := Polynomial("x", 4, -4, 1)

		value, err := f.Evaluate(map[string]float64{"x": 2})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, value, 1e-9)

		value, err = f.Evaluate(map[string]float64{"x": 3})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, value, 1e-9)
	})

	t.Run("denominator divides the sum", func(t *testing.T) {
		f := Fraction{Numerator: []Term{Var("x"), Constant(2)}, Denominator: 2}
		value, err := f.Evaluate(map[string]float64{"x": 4})
		require.NoError(t, err)
		assert.InDelta(t, 3.0, value, 1e-9)
	})

	t.Run("missing binding aborts", func(t *testing.T) {
		f := Sum(Var("x"), Var("y"))
		_, err := f.Evaluate(map[string]float64{"x": 1})
		var missing *MissingVariableError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "y", missing.Variable)
	})

	t.Run("empty numerator is zero", func(t *testing.T) {
		value, err := Fraction{Denominator: 1}.Evaluate(nil)
		require.NoError(t, err)
		assert.Zero(t, value)
	})
}

func TestFractionDifferentiate(t *testing.T) {
	t.Run("x^3y^2 + 2xy - y with respect to x", func(t *testing.T) {
		f := Sum(
			Term{Coefficient: 1, Powers: map[string]int{"x": 3, "y": 2}},
			Term{Coefficient: 2, Powers: map[string]int{"x": 1, "y": 1}},
			Term{Coefficient: -1, Powers: map[string]int{"y": 1}},
		)

		derived, err := f.Differentiate("x")
		require.NoError(t, err)
		simplified := derived.Simplify()
		require.Len(t, simplified.Numerator, 2)
		assert.Equal(t, Term{Coefficient: 3, Powers: map[string]int{"x": 2, "y": 2}}, simplified.Numerator[0])
		assert.Equal(t, Term{Coefficient: 2, Powers: map[string]int{"y": 1}}, simplified.Numerator[1])
		assert.Equal(t, "3x^2y^2 + 2y", simplified.String())
	})

	t.Run("x^3y^2 + 2xy - y with respect to y", func(t *testing.T) {
		f := Sum(
			Term{Coefficient: 1, Powers: map[string]int{"x": 3, "y": 2}},
			Term{Coefficient: 2, Powers: map[string]int{"x": 1, "y": 1}},
			Term{Coefficient: -1, Powers: map[string]int{"y": 1}},
		)

		derived, err := f.Differentiate("y")
		require.NoError(t, err)
		simplified := derived.Simplify()
		assert.Equal(t, "2x^3y + 2x - 1", simplified.String())
	})

	t.Run("terms that vanish are dropped", func(t *testing.T) {
		f := Polynomial("x", 7, 0, 1) // x^2 + 7
		derived, err := f.Differentiate("x")
		require.NoError(t, err)
		require.Len(t, derived.Numerator, 1)
		assert.Equal(t, "2x", derived.String())
	})

	t.Run("non-unit denominator is a hard failure", func(t *testing.T) {
		f := Fraction{Numerator: []Term{Var("x")}, Denominator: 3}
		_, err := f.Differentiate("x")
		var unsupported *UnsupportedDenominatorError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, 3.0, unsupported.Denominator)
	})
}

func TestFractionIntegrate(t *testing.T) {
	t.Run("fundamental theorem consistency", func(t *testing.T) {
		f := Polynomial("x", 1, -2, 0, 4) // 4x^3 - 2x + 1
		lower, upper := -1.5, 2.0

		definite, warnings := f.IntegrateDefinite(lower, upper, "x")
		assert.Empty(t, warnings)
		direct, err := definite.Evaluate(nil)
		require.NoError(t, err)

		antiderivative := f.Integrate("x")
		atUpper, err := antiderivative.Evaluate(map[string]float64{"x": upper})
		require.NoError(t, err)
		atLower, err := antiderivative.Evaluate(map[string]float64{"x": lower})
		require.NoError(t, err)

		assert.InDelta(t, atUpper-atLower, direct, 1e-9)
	})

	t.Run("zero width bound evaluates to zero", func(t *testing.T) {
		f := Polynomial("x", 3, 5, 7)
		definite, _ := f.IntegrateDefinite(2.5, 2.5, "x")
		value, err := definite.Evaluate(nil)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, value, 1e-9)
	})

	t.Run("non-unit denominator warns but still answers", func(t *testing.T) {
		f := Fraction{Numerator: []Term{Var("x")}, Denominator: 2}
		definite, warnings := f.IntegrateDefinite(0, 2, "x")
		require.Len(t, warnings, 1)
		assert.Equal(t, WarnInaccurateDenominator, warnings[0].Code)

		value, err := definite.Evaluate(nil)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, value, 1e-9)
	})

	t.Run("indefinite keeps the denominator", func(t *testing.T) {
		f := Fraction{Numerator: []Term{Var("x")}, Denominator: 2}
		integrated := f.Integrate("x")
		assert.Equal(t, 2.0, integrated.Denominator)
		assert.Equal(t, "(0.5x^2) / 2", integrated.String())
	})
}

func TestFractionSimplify(t *testing.T) {
	t.Run("like terms cancel", func(t *testing.T) {
		f := Sum(
			Term{Coefficient: 5, Powers: map[string]int{"x": 2}},
			Term{Coefficient: -5, Powers: map[string]int{"x": 2}},
			Constant(3),
		)
		simplified := f.Simplify()
		require.Len(t, simplified.Numerator, 1)
		assert.Equal(t, Constant(3), simplified.Numerator[0])
	})

	t.Run("grouping needs identical variable sets", func(t *testing.T) {
		f := Sum(
			Term{Coefficient: 1, Powers: map[string]int{"x": 1, "y": 1}},
			Term{Coefficient: 1, Powers: map[string]int{"x": 1}},
		)
		simplified := f.Simplify()
		assert.Len(t, simplified.Numerator, 2)
	})

	t.Run("first occurrence order is preserved", func(t *testing.T) {
		f := Sum(
			Constant(1),
			Term{Coefficient: 2, Powers: map[string]int{"x": 1}},
			Constant(4),
			Term{Coefficient: 3, Powers: map[string]int{"x": 1}},
		)
		simplified := f.Simplify()
		require.Len(t, simplified.Numerator, 2)
		assert.Equal(t, "5 + 5x", simplified.String())
	})

	t.Run("idempotent", func(t *testing.T) {
		f := Sum(
			Term{Coefficient: 2, Powers: map[string]int{"x": 2}},
			Var("x"),
			Term{Coefficient: 3, Powers: map[string]int{"x": 2}},
			Constant(-1),
		)
		once := f.Simplify()
		twice := once.Simplify()
		assert.Equal(t, once, twice)
	})

	t.Run("near-zero residue is dropped", func(t *testing.T) {
		f := Sum(
			Term{Coefficient: 0.1 + 0.2, Powers: map[string]int{"x": 1}},
			Term{Coefficient: -0.3, Powers: map[string]int{"x": 1}},
		)
		simplified := f.Simplify()
		assert.Empty(t, simplified.Numerator)
	})

	t.Run("input is untouched", func(t *testing.T) {
		f := Sum(Constant(1), Constant(2))
		_ = f.Simplify()
		assert.Len(t, f.Numerator, 2)
	})
}
