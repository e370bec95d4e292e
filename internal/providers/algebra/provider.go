package algebra

import (
	"context"
	"fmt"

	"github.com/polycalc/polycalc/internal/logging"
	"github.com/polycalc/polycalc/internal/monitoring"
	"github.com/polycalc/polycalc/internal/types"
)

// Provider implements symbolic algebra operations
type Provider struct {
	// Module instances
	calculus  *CalculusOps
	structure *StructureOps
	analysis  *AnalysisOps
}

// NewProvider creates a modular algebra provider
func NewProvider(log *logging.Logger, metrics *monitoring.Metrics) *Provider {
	ops := &Ops{Log: log, Metrics: metrics}

	return &Provider{
		calculus:  &CalculusOps{Ops: ops},
		structure: &StructureOps{Ops: ops},
		analysis:  &AnalysisOps{Ops: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.structure.GetTools()...)
	tools = append(tools, p.calculus.GetTools()...)
	tools = append(tools, p.analysis.GetTools()...)

	return types.Service{
		ID:          "algebra",
		Name:        "Algebra Service",
		Description: "Symbolic polynomial algebra (differentiation, integration, simplification, analysis)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"evaluation",
			"differentiation",
			"integration",
			"simplification",
			"expansion",
			"analysis",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Structural operations
	case "algebra.evaluate":
		return p.structure.Evaluate(ctx, params, appCtx)
	case "algebra.simplify":
		return p.structure.Simplify(ctx, params, appCtx)
	case "algebra.expand":
		return p.structure.Expand(ctx, params, appCtx)
	case "algebra.polynomial":
		return p.structure.Polynomial(ctx, params, appCtx)

	// Calculus operations
	case "algebra.differentiate":
		return p.calculus.Differentiate(ctx, params, appCtx)
	case "algebra.integrate":
		return p.calculus.Integrate(ctx, params, appCtx)
	case "algebra.integrate.definite":
		return p.calculus.IntegrateDefinite(ctx, params, appCtx)
	case "algebra.integrate.region":
		return p.calculus.IntegrateRegion(ctx, params, appCtx)

	// Analysis operations
	case "algebra.taylor":
		return p.analysis.Taylor(ctx, params, appCtx)
	case "algebra.critical_points":
		return p.analysis.CriticalPoints(ctx, params, appCtx)
	case "algebra.arc_length":
		return p.analysis.ArcLength(ctx, params, appCtx)
	case "algebra.surface_area":
		return p.analysis.SurfaceArea(ctx, params, appCtx)
	case "algebra.gradient":
		return p.analysis.Gradient(ctx, params, appCtx)
	case "algebra.directional_derivative":
		return p.analysis.DirectionalDerivative(ctx, params, appCtx)
	case "algebra.lagrange":
		return p.analysis.Lagrange(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
