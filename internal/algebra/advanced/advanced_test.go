package advanced

import (
	"math"
	"testing"

	"github.com/polycalc/polycalc/internal/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaylor(t *testing.T) {
	t.Run("reproduces a polynomial exactly", func(t *testing.T) {
		f := algebra.Polynomial("x", 1, -2, 0, 4) // 4x^3 - 2x + 1
		taylor, err := Taylor(f, "x", 0, 3)
		require.NoError(t, err)

		for _, x := range []float64{-2, -0.5, 0, 1, 3} {
			want, err := f.Evaluate(map[string]float64{"x": x})
			require.NoError(t, err)
			got, err := taylor.Evaluate(map[string]float64{"x": x})
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9)
		}
	})

	t.Run("nonzero center", func(t *testing.T) {
		f := algebra.Polynomial("x", 0, 0, 1) // x^2
		taylor, err := Taylor(f, "x", 3, 2)
		require.NoError(t, err)

		got, err := taylor.Evaluate(map[string]float64{"x": 5})
		require.NoError(t, err)
		assert.InDelta(t, 25.0, got, 1e-9)
	})

	t.Run("truncation below the degree", func(t *testing.T) {
		f := algebra.Polynomial("x", 0, 0, 0, 1) // x^3
		taylor, err := Taylor(f, "x", 0, 1)
		require.NoError(t, err)
		got, err := taylor.Evaluate(map[string]float64{"x": 2})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, got, 1e-9) // both derivatives vanish at 0
	})

	t.Run("negative order is rejected", func(t *testing.T) {
		_, err := Taylor(algebra.Polynomial("x", 1), "x", 0, -1)
		assert.Error(t, err)
	})
}

func TestCriticalPoints(t *testing.T) {
	t.Run("parabola has one minimum", func(t *testing.T) {
		f := algebra.Polynomial("x", 4, -4, 1) // (x-2)^2
		points, err := CriticalPoints(f, "x", -10, 10)
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.InDelta(t, 2.0, points[0].X, 1e-6)
		assert.InDelta(t, 0.0, points[0].Value, 1e-6)
		assert.Equal(t, Minimum, points[0].Kind)
	})

	t.Run("cubic has a maximum and a minimum", func(t *testing.T) {
		f := algebra.Polynomial("x", 0, -3, 0, 1) // x^3 - 3x
		points, err := CriticalPoints(f, "x", -5, 5)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.InDelta(t, -1.0, points[0].X, 1e-6)
		assert.Equal(t, Maximum, points[0].Kind)
		assert.InDelta(t, 1.0, points[1].X, 1e-6)
		assert.Equal(t, Minimum, points[1].Kind)
	})

	t.Run("rejects stray variables", func(t *testing.T) {
		f := algebra.Sum(algebra.Var("y"))
		_, err := CriticalPoints(f, "x", 0, 1)
		assert.Error(t, err)
	})
}

func TestQuadrature(t *testing.T) {
	t.Run("arc length of a line segment", func(t *testing.T) {
		// y = 3x/4 over [0,4] has length 5 by Pythagoras
		f := algebra.Polynomial("x", 0, 0.75)
		length, err := ArcLength(f, "x", 0, 4)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, length, 1e-9)
	})

	t.Run("arc length of a parabola", func(t *testing.T) {
		// closed form: ∫√(1+4x²) over [0,1] = (2√5 + asinh 2)/4
		f := algebra.Polynomial("x", 0, 0, 1)
		want := (2*math.Sqrt(5) + math.Asinh(2)) / 4
		length, err := ArcLength(f, "x", 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, want, length, 1e-6)
	})

	t.Run("surface of a cone", func(t *testing.T) {
		// y = x over [0,1] revolved: lateral area π·r·slant = π√2
		f := algebra.Polynomial("x", 0, 1)
		area, err := SurfaceOfRevolution(f, "x", 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi*math.Sqrt2, area, 1e-6)
	})
}

func TestGradient(t *testing.T) {
	f := algebra.Sum(
		algebra.Term{Coefficient: 1, Powers: map[string]int{"x": 2}},
		algebra.Term{Coefficient: 3, Powers: map[string]int{"x": 1, "y": 1}},
	)

	t.Run("symbolic partials", func(t *testing.T) {
		partials, err := Gradient(f, []string{"x", "y"})
		require.NoError(t, err)
		require.Len(t, partials, 2)
		assert.Equal(t, "2x + 3y", partials[0].String())
		assert.Equal(t, "3x", partials[1].String())
	})

	t.Run("directional derivative along a unit axis", func(t *testing.T) {
		point := map[string]float64{"x": 1, "y": 2}
		value, err := DirectionalDerivative(f, []string{"x", "y"}, point, []float64{1, 0})
		require.NoError(t, err)
		assert.InDelta(t, 8.0, value, 1e-9) // ∂f/∂x = 2x+3y = 8
	})

	t.Run("direction is normalized", func(t *testing.T) {
		point := map[string]float64{"x": 1, "y": 2}
		short, err := DirectionalDerivative(f, []string{"x", "y"}, point, []float64{1, 1})
		require.NoError(t, err)
		long, err := DirectionalDerivative(f, []string{"x", "y"}, point, []float64{10, 10})
		require.NoError(t, err)
		assert.InDelta(t, short, long, 1e-9)
	})

	t.Run("zero direction is rejected", func(t *testing.T) {
		_, err := DirectionalDerivative(f, []string{"x", "y"}, map[string]float64{"x": 0, "y": 0}, []float64{0, 0})
		assert.Error(t, err)
	})
}

func TestLagrange(t *testing.T) {
	// maximize xy subject to x + y - 10 = 0
	objective := algebra.Sum(algebra.Term{Coefficient: 1, Powers: map[string]int{"x": 1, "y": 1}})
	constraint := algebra.Sum(algebra.Var("x"), algebra.Var("y"), algebra.Constant(-10))

	system, err := Lagrange(objective, constraint, []string{"x", "y"})
	require.NoError(t, err)
	require.Len(t, system.Conditions, 2)

	assert.Equal(t, "y", system.Conditions[0].ObjectivePartial.String())
	assert.Equal(t, "1", system.Conditions[0].ConstraintPartial.String())
	assert.Equal(t, "x", system.Conditions[1].ObjectivePartial.String())
	assert.Equal(t, "1", system.Conditions[1].ConstraintPartial.String())

	value, err := system.Constraint.Evaluate(map[string]float64{"x": 5, "y": 5})
	require.NoError(t, err)
	assert.Zero(t, value)
}
