package algebra

import (
	"context"

	"go.uber.org/zap"

	core "github.com/polycalc/polycalc/internal/algebra"
	"github.com/polycalc/polycalc/internal/types"
)

// CalculusOps handles symbolic differentiation and integration
type CalculusOps struct {
	*Ops
}

// GetTools returns calculus tool definitions
func (c *CalculusOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "algebra.differentiate",
			Name:        "Differentiate",
			Description: "Differentiate a polynomial fraction with respect to one variable",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variable", Type: "string", Description: "Variable to differentiate by", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "algebra.integrate",
			Name:        "Integrate",
			Description: "Indefinite integral of a polynomial fraction in one variable",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variable", Type: "string", Description: "Variable to integrate by", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "algebra.integrate.definite",
			Name:        "Definite Integral",
			Description: "Definite integral over [lower, upper] in one variable",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "variable", Type: "string", Description: "Integration variable", Required: true},
				{Name: "lower", Type: "number", Description: "Lower bound", Required: true},
				{Name: "upper", Type: "number", Description: "Upper bound", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "algebra.integrate.region",
			Name:        "Integrate Over Region",
			Description: "Iterated definite integration over ordered per-variable bounds",
			Parameters: []types.Parameter{
				{Name: "fraction", Type: "object", Description: "Wire-form fraction", Required: true},
				{Name: "bounds", Type: "array", Description: "Ordered [{variable, lower, upper}]", Required: true},
			},
			Returns: "object",
		},
	}
}

// Differentiate applies the power rule with respect to one variable
func (c *CalculusOps) Differentiate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		return Failure(err.Error())
	}
	variable, ok := GetString(params, "variable")
	if !ok {
		return Failure("variable parameter required")
	}

	derived, err := fraction.Differentiate(variable)
	if err != nil {
		return Failure(err.Error())
	}
	return c.fractionResult(derived, nil)
}

// Integrate computes the indefinite integral in one variable
func (c *CalculusOps) Integrate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		return Failure(err.Error())
	}
	variable, ok := GetString(params, "variable")
	if !ok {
		return Failure("variable parameter required")
	}

	return c.fractionResult(fraction.Integrate(variable), nil)
}

// IntegrateDefinite computes a definite integral in one variable
func (c *CalculusOps) IntegrateDefinite(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		return Failure(err.Error())
	}
	variable, ok := GetString(params, "variable")
	if !ok {
		return Failure("variable parameter required")
	}
	lower, ok := GetNumber(params, "lower")
	if !ok {
		return Failure("lower parameter required")
	}
	upper, ok := GetNumber(params, "upper")
	if !ok {
		return Failure("upper parameter required")
	}

	result, warnings := fraction.IntegrateDefinite(lower, upper, variable)
	c.reportWarnings("algebra.integrate.definite", warnings)
	return c.fractionResult(result, warnings)
}

// IntegrateRegion iterates definite integration over ordered bounds
func (c *CalculusOps) IntegrateRegion(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fraction, err := GetFraction(params, "fraction")
	if err != nil {
		return Failure(err.Error())
	}
	bounds, err := GetBounds(params, "bounds")
	if err != nil {
		return Failure(err.Error())
	}

	result, warnings := fraction.IntegrateOverRegion(bounds)
	c.reportWarnings("algebra.integrate.region", warnings)
	return c.fractionResult(result, warnings)
}

// fractionResult packages a fraction (and any warnings) into a result
func (o *Ops) fractionResult(f core.Fraction, warnings []core.Warning) (*types.Result, error) {
	tree, err := FractionData(f)
	if err != nil {
		return Failure(err.Error())
	}
	data := map[string]interface{}{
		"result":   tree,
		"rendered": f.String(),
	}
	if len(warnings) > 0 {
		rendered := make([]string, 0, len(warnings))
		for _, warning := range warnings {
			rendered = append(rendered, warning.String())
		}
		data["warnings"] = rendered
	}
	return Success(data)
}

// reportWarnings surfaces best-effort warnings through the log and metrics
func (o *Ops) reportWarnings(tool string, warnings []core.Warning) {
	for _, warning := range warnings {
		if o.Log != nil {
			o.Log.Warn("best-effort result",
				zap.String("tool", tool),
				zap.String("code", warning.Code),
				zap.String("message", warning.Message),
			)
		}
		if o.Metrics != nil {
			o.Metrics.RecordWarning(warning.Code)
		}
	}
}
