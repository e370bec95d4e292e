package algebra

import (
	"context"

	core "github.com/polycalc/polycalc/internal/algebra"
	"github.com/polycalc/polycalc/internal/types"
)

// StructureOps handles evaluation, simplification, and expansion
type StructureOps struct {
	*Ops
}

// GetTools returns structural tool definitions
func (s *StructureOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "algebra.evaluate",
			Name:        "Evaluate",
			Description: "Evaluate a fraction, product, or equation at a variable binding",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: false},
				{Name: "product", Type: "array", Description: "Wire-form product of fractions", Required: false},
				{Name: "equation", Type: "array", Description: "Wire-form sum of products", Required: false},
				{Name: "bindings", Type: "object", Description: "Variable name to value", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "algebra.simplify",
			Name:        "Simplify",
			Description: "Merge like terms and drop near-zero coefficients",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "algebra.expand",
			Name:        "Expand",
			Description: "Expand a product of fractions into one simplified fraction",
			Parameters: []types.Parameter{
				{Name: "product", Type: "array", Description: "Wire-form product of fractions", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "algebra.polynomial",
			Name:        "Polynomial",
			Description: "Build a single-variable polynomial from ascending coefficients",
			Parameters: []types.Parameter{
				{Name: "variable", Type: "string", Description: "Polynomial variable", Required: true},
				{Name: "coefficients", Type: "array", Description: "Ascending degree, constant term first", Required: true},
			},
			Returns: "object",
		},
	}
}

// Evaluate substitutes bindings into whichever expression form was sent
func (s *StructureOps) Evaluate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	bindings, _ := GetBindings(params, "bindings")

	var (
		value float64
		err   error
	)
	switch {
	case params["fraction"] != nil:
		var fraction core.Fraction
		if fraction, err = GetFraction(params, "fraction"); err == nil {
			value, err = fraction.Evaluate(bindings)
		}
	case params["product"] != nil:
		var product core.Product
		if product, err = GetProduct(params, "product"); err == nil {
			value, err = product.Evaluate(bindings)
		}
	case params["equation"] != nil:
		var equation core.Equation
		if equation, err = GetEquation(params, "equation"); err == nil {
			value, err = equation.Evaluate(bindings)
		}
	default:
		return Failure("one of fraction, product, or equation is required")
	}
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{"result": value})
}

// Simplify merges like terms
func (s *StructureOps) Simplify(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		return Failure(err.Error())
	}
	return s.fractionResult(fraction.Simplify(), nil)
}

// Expand multiplies out a product of fractions
func (s *StructureOps) Expand(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	product, err := GetProduct(params, "product")
	if err != nil {
		return Failure(err.Error())
	}

	expanded, err := product.Expand()
	if err != nil {
		return Failure(err.Error())
	}
	return s.fractionResult(expanded, nil)
}

// Polynomial builds a fraction from ascending coefficients
func (s *StructureOps) Polynomial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	variable, ok := GetString(params, "variable")
	if !ok {
		return Failure("variable parameter required")
	}
	coefficients, ok := GetNumbers(params, "coefficients")
	if !ok || len(coefficients) == 0 {
		return Failure("coefficients parameter required")
	}

	return s.fractionResult(core.Polynomial(variable, coefficients...), nil)
}
