package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Run("(x+1)(x+2) becomes x^2 + 3x + 2", func(t *testing.T) {
		product := NewProduct(Polynomial("x", 1, 1), Polynomial("x", 2, 1))

		expanded, err := product.Expand()
		require.NoError(t, err)
		assert.Equal(t, "x^2 + 3x + 2", expanded.Simplify().String())

		atFive, err := expanded.Evaluate(map[string]float64{"x": 5})
		require.NoError(t, err)
		unexpanded, err := product.Evaluate(map[string]float64{"x": 5})
		require.NoError(t, err)
		assert.InDelta(t, 42.0, atFive, 1e-9)
		assert.InDelta(t, 42.0, unexpanded, 1e-9)
	})

	t.Run("distributivity across sample bindings", func(t *testing.T) {
		a := Sum(Var("x"), Term{Coefficient: -2, Powers: map[string]int{"y": 1}}, Constant(1))
		b := Sum(Term{Coefficient: 3, Powers: map[string]int{"x": 2}}, Var("y"))
		product := NewProduct(a, b)

		expanded, err := product.Expand()
		require.NoError(t, err)

		for _, bindings := range []map[string]float64{
			{"x": 0, "y": 0},
			{"x": 1, "y": -1},
			{"x": 2.5, "y": 0.5},
			{"x": -3, "y": 4},
		} {
			fromExpanded, err := expanded.Evaluate(bindings)
			require.NoError(t, err)
			direct, err := product.Evaluate(bindings)
			require.NoError(t, err)
			assert.InDelta(t, direct, fromExpanded, 1e-9)
		}
	})

	t.Run("empty product is the identity", func(t *testing.T) {
		expanded, err := Product{}.Expand()
		require.NoError(t, err)
		value, err := expanded.Evaluate(nil)
		require.NoError(t, err)
		assert.Equal(t, 1.0, value)
	})

	t.Run("single fraction passes through unsimplified", func(t *testing.T) {
		f := Sum(Var("x"), Var("x"))
		expanded, err := Product{f}.Expand()
		require.NoError(t, err)
		assert.Len(t, expanded.Numerator, 2)
	})

	t.Run("non-unit denominator is rejected", func(t *testing.T) {
		bad := Fraction{Numerator: []Term{Var("x")}, Denominator: 2}
		_, err := Expand(Polynomial("x", 1, 1), bad)
		var unsupported *UnsupportedDenominatorError
		require.ErrorAs(t, err, &unsupported)
	})

	t.Run("expanded output is already simplified", func(t *testing.T) {
		// (x+1)(x-1) collapses the cross terms
		expanded, err := Expand(Polynomial("x", 1, 1), Polynomial("x", -1, 1))
		require.NoError(t, err)
		assert.Equal(t, "x^2 - 1", expanded.String())
	})
}

func TestEquationEvaluate(t *testing.T) {
	t.Run("sums its products", func(t *testing.T) {
		equation := NewEquation(
			NewProduct(Polynomial("x", 1, 1), Polynomial("x", 2, 1)), // (x+1)(x+2)
			NewProduct(Polynomial("x", 0, -1)),                       // -x
		)
		value, err := equation.Evaluate(map[string]float64{"x": 2})
		require.NoError(t, err)
		assert.InDelta(t, 10.0, value, 1e-9)
	})

	t.Run("empty equation is zero", func(t *testing.T) {
		value, err := Equation{}.Evaluate(nil)
		require.NoError(t, err)
		assert.Zero(t, value)
	})

	t.Run("simplify stays within each fraction", func(t *testing.T) {
		duplicated := Sum(Var("x"), Var("x"))
		equation := NewEquation(NewProduct(duplicated, duplicated))
		simplified := equation.Simplify()
		require.Len(t, simplified, 1)
		require.Len(t, simplified[0], 2)
		assert.Len(t, simplified[0][0].Numerator, 1)
		assert.Len(t, simplified[0][1].Numerator, 1)
	})
}
