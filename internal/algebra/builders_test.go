package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders(t *testing.T) {
	t.Run("polynomial renders highest degree first", func(t *testing.T) {
		f := Polynomial("x", 4, -4, 1)
		assert.Equal(t, "x^2 - 4x + 4", f.String())
	})

	t.Run("monomial strips zero powers", func(t *testing.T) {
		term, err := Monomial(3, map[string]int{"x": 2, "y": 0})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"x": 2}, term.Powers)
	})

	t.Run("monomial with only zero powers is a constant", func(t *testing.T) {
		term, err := Monomial(3, map[string]int{"x": 0})
		require.NoError(t, err)
		assert.True(t, term.IsConstant())
	})

	t.Run("monomial rejects negative exponents", func(t *testing.T) {
		_, err := Monomial(1, map[string]int{"x": -2})
		assert.Error(t, err)
	})

	t.Run("sum does not alias its inputs", func(t *testing.T) {
		term := Var("x")
		f := Sum(term)
		f.Numerator[0].Powers["x"] = 5
		assert.Equal(t, 1, term.Powers["x"])
	})
}
