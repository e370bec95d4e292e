package advanced

import (
	"fmt"
	"math"

	"github.com/polycalc/polycalc/internal/algebra"
	"gonum.org/v1/gonum/floats"
)

// PointKind classifies a critical point by the sign of the second
// derivative.
type PointKind string

const (
	Minimum      PointKind = "minimum"
	Maximum      PointKind = "maximum"
	Undetermined PointKind = "undetermined"
)

// CriticalPoint is a root of f' inside the search interval.
type CriticalPoint struct {
	X     float64   `json:"x"`
	Value float64   `json:"value"`
	Kind  PointKind `json:"kind"`
}

const (
	rootSamples     = 512
	rootBisections  = 80
	rootMergeWindow = 1e-7
	curvatureZero   = 1e-9
)

// CriticalPoints locates the zeros of f' on [lower, upper] by sampling a
// uniform grid for sign changes and refining each bracket with bisection,
// then classifies each zero by the sign of f'' there. f must be a
// single-variable fraction in the given variable.
func CriticalPoints(f algebra.Fraction, variable string, lower, upper float64) ([]CriticalPoint, error) {
	if lower >= upper {
		return nil, fmt.Errorf("critical points: empty interval [%g, %g]", lower, upper)
	}
	if err := requireOnlyVariable(f, variable, "critical points"); err != nil {
		return nil, err
	}

	first, err := f.Differentiate(variable)
	if err != nil {
		return nil, fmt.Errorf("critical points: %w", err)
	}
	first = first.Simplify()
	second, err := first.Differentiate(variable)
	if err != nil {
		return nil, fmt.Errorf("critical points: %w", err)
	}
	second = second.Simplify()

	slope := singleVariableFunc(first, variable)
	curvature := singleVariableFunc(second, variable)
	height := singleVariableFunc(f, variable)

	grid := floats.Span(make([]float64, rootSamples), lower, upper)

	var points []CriticalPoint
	record := func(x float64) {
		for _, existing := range points {
			if math.Abs(existing.X-x) < rootMergeWindow*math.Max(1, math.Abs(x)) {
				return
			}
		}
		points = append(points, CriticalPoint{X: x, Value: height(x), Kind: classify(curvature(x))})
	}

	for i := 1; i < len(grid); i++ {
		a, b := grid[i-1], grid[i]
		fa, fb := slope(a), slope(b)
		switch {
		case fa == 0:
			record(a)
		case i == len(grid)-1 && fb == 0:
			record(b)
		case fa*fb < 0:
			record(bisect(slope, a, b, fa))
		}
	}
	return points, nil
}

func classify(curvature float64) PointKind {
	switch {
	case curvature > curvatureZero:
		return Minimum
	case curvature < -curvatureZero:
		return Maximum
	default:
		return Undetermined
	}
}

func bisect(f func(float64) float64, a, b, fa float64) float64 {
	for i := 0; i < rootBisections; i++ {
		mid := (a + b) / 2
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return (a + b) / 2
}

// singleVariableFunc adapts a fraction known to contain only the given
// variable into a plain func for numeric loops. requireOnlyVariable must
// have been checked first; evaluation cannot fail after that.
func singleVariableFunc(f algebra.Fraction, variable string) func(float64) float64 {
	bindings := make(map[string]float64, 1)
	return func(x float64) float64 {
		bindings[variable] = x
		value, err := f.Evaluate(bindings)
		if err != nil {
			return math.NaN()
		}
		return value
	}
}

func requireOnlyVariable(f algebra.Fraction, variable, operation string) error {
	for _, name := range f.Variables() {
		if name != variable {
			return fmt.Errorf("%s: expression depends on %q, expected only %q", operation, name, variable)
		}
	}
	return nil
}
