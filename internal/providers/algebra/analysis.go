package algebra

import (
	"context"

	core "github.com/polycalc/polycalc/internal/algebra"
	"github.com/polycalc/polycalc/internal/algebra/advanced"
	"github.com/polycalc/polycalc/internal/types"
)

// AnalysisOps handles numeric and multivariable analysis tools
type AnalysisOps struct {
	*Ops
}

// GetTools returns analysis tool definitions
func (a *AnalysisOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "algebra.taylor",
			Name:        "Taylor Polynomial",
			Description: "Taylor polynomial of a fraction about a center",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variable", Type: "string", Description: "Expansion variable", Required: true},
				{Name: "center", Type: "number", Description: "Expansion center", Required: true},
				{Name: "order", Type: "number", Description: "Polynomial order", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "algebra.critical_points",
			Name:        "Critical Points",
			Description: "Locate and classify critical points on an interval",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variable", Type: "string", Description: "Search variable", Required: true},
				{Name: "lower", Type: "number", Description: "Interval start", Required: true},
				{Name: "upper", Type: "number", Description: "Interval end", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "algebra.arc_length",
			Name:        "Arc Length",
			Description: "Arc length of a curve y = f(x) over an interval",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variable", Type: "string", Description: "Curve variable", Required: true},
				{Name: "lower", Type: "number", Description: "Interval start", Required: true},
				{Name: "upper", Type: "number", Description: "Interval end", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "algebra.surface_area",
			Name:        "Surface of Revolution",
			Description: "Area of the surface from revolving y = f(x) about the axis",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variable", Type: "string", Description: "Curve variable", Required: true},
				{Name: "lower", Type: "number", Description: "Interval start", Required: true},
				{Name: "upper", Type: "number", Description: "Interval end", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "algebra.gradient",
			Name:        "Gradient",
			Description: "Vector of partial derivatives over the given variables",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variables", Type: "array", Description: "Variable order for the vector", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "algebra.directional_derivative",
			Name:        "Directional Derivative",
			Description: "Rate of change at a point along a normalized direction",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variables", Type: "array", Description: "Variable order for the vector", Required: true},
				{Name: "point", Type: "object", Description: "Evaluation point bindings", Required: true},
				{Name: "direction", Type: "array", Description: "Direction vector, any magnitude", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "algebra.lagrange",
			Name:        "Lagrange System",
			Description: "Stationarity system for an objective under one constraint",
			Parameters: []types.Parameter{
				{Name: "objective", Type: "object", Description: "Wire-form objective fraction", Required: true},
				{Name: "constraint", Type: "object", Description: "Wire-form constraint fraction", Required: true},
				{Name: "variables", Type: "array", Description: "Optimization variables", Required: true},
			},
			Returns: "object",
		},
	}
}

// Taylor computes a Taylor polynomial about a center
func (a *AnalysisOps) Taylor(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		return Failure(err.Error())
	}
	variable, ok := GetString(params, "variable")
	if !ok {
		return Failure("variable parameter required")
	}
	center, ok := GetNumber(params, "center")
	if !ok {
		return Failure("center parameter required")
	}
	order, ok := GetInt(params, "order")
	if !ok {
		return Failure("order parameter required")
	}

	polynomial, err := advanced.Taylor(fraction, variable, center, order)
	if err != nil {
		return Failure(err.Error())
	}
	return a.fractionResult(polynomial, nil)
}

// CriticalPoints finds and classifies zeros of the derivative
func (a *AnalysisOps) CriticalPoints(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, variable, lower, upper, fail := a.intervalParams(params)
	if fail != nil {
		return fail, nil
	}

	points, err := advanced.CriticalPoints(fraction, variable, lower, upper)
	if err != nil {
		return Failure(err.Error())
	}

	rendered := make([]map[string]interface{}, 0, len(points))
	for _, point := range points {
		rendered = append(rendered, map[string]interface{}{
			"x":     point.X,
			"value": point.Value,
			"kind":  string(point.Kind),
		})
	}
	return Success(map[string]interface{}{"points": rendered})
}

// ArcLength integrates the curve length over an interval
func (a *AnalysisOps) ArcLength(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, variable, lower, upper, fail := a.intervalParams(params)
	if fail != nil {
		return fail, nil
	}

	length, err := advanced.ArcLength(fraction, variable, lower, upper)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": length})
}

// SurfaceArea integrates the surface of revolution about the axis
func (a *AnalysisOps) SurfaceArea(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, variable, lower, upper, fail := a.intervalParams(params)
	if fail != nil {
		return fail, nil
	}

	area, err := advanced.SurfaceOfRevolution(fraction, variable, lower, upper)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": area})
}

// Gradient returns the vector of partials in the requested variable order
func (a *AnalysisOps) Gradient(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		return Failure(err.Error())
	}
	variables, ok := GetStrings(params, "variables")
	if !ok {
		return Failure("variables parameter required")
	}

	partials, err := advanced.Gradient(fraction, variables)
	if err != nil {
		return Failure(err.Error())
	}

	components := make([]map[string]interface{}, 0, len(partials))
	for i, partial := range partials {
		tree, err := FractionData(partial)
		if err != nil {
			return Failure(err.Error())
		}
		components = append(components, map[string]interface{}{
			"variable": variables[i],
			"partial":  tree,
			"rendered": partial.String(),
		})
	}
	return Success(map[string]interface{}{"gradient": components})
}

// DirectionalDerivative evaluates the gradient dotted with a unit direction
func (a *AnalysisOps) DirectionalDerivative(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		return Failure(err.Error())
	}
	variables, ok := GetStrings(params, "variables")
	if !ok {
		return Failure("variables parameter required")
	}
	point, ok := GetBindings(params, "point")
	if !ok {
		return Failure("point parameter required")
	}
	direction, ok := GetNumbers(params, "direction")
	if !ok {
		return Failure("direction parameter required")
	}

	rate, err := advanced.DirectionalDerivative(fraction, variables, point, direction)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"result": rate})
}

// Lagrange builds the stationarity system for one equality constraint
func (a *AnalysisOps) Lagrange(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	objective, err := GetFraction(params, "objective")
	if err != nil {
		return Failure(err.Error())
	}
	constraint, err := GetFraction(params, "constraint")
	if err != nil {
		return Failure(err.Error())
	}
	variables, ok := GetStrings(params, "variables")
	if !ok {
		return Failure("variables parameter required")
	}

	system, err := advanced.Lagrange(objective, constraint, variables)
	if err != nil {
		return Failure(err.Error())
	}

	conditions := make([]map[string]interface{}, 0, len(system.Conditions))
	for _, condition := range system.Conditions {
		objectiveTree, err := FractionData(condition.ObjectivePartial)
		if err != nil {
			return Failure(err.Error())
		}
		constraintTree, err := FractionData(condition.ConstraintPartial)
		if err != nil {
			return Failure(err.Error())
		}
		conditions = append(conditions, map[string]interface{}{
			"variable":           condition.Variable,
			"objective_partial":  objectiveTree,
			"constraint_partial": constraintTree,
			"rendered": condition.ObjectivePartial.String() +
				" = lambda * (" + condition.ConstraintPartial.String() + ")",
		})
	}
	constraintTree, err := FractionData(system.Constraint)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"conditions": conditions,
		"constraint": constraintTree,
	})
}

// intervalParams extracts the shared fraction/variable/interval parameters
func (a *AnalysisOps) intervalParams(params map[string]interface{}) (fraction core.Fraction, variable string, lower, upper float64, fail *types.Result) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		fail, _ = Failure(err.Error())
		return
	}
	var ok bool
	if variable, ok = GetString(params, "variable"); !ok {
		fail, _ = Failure("variable parameter required")
		return
	}
	if lower, ok = GetNumber(params, "lower"); !ok {
		fail, _ = Failure("lower parameter required")
		return
	}
	if upper, ok = GetNumber(params, "upper"); !ok {
		fail, _ = Failure("upper parameter required")
		return
	}
	return
}
