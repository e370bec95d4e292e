package algebra

import "fmt"

// MissingVariableError is returned by evaluation when a variable in an
// expression has no binding. Evaluation fails immediately; no default value
// is substituted.
type MissingVariableError struct {
	Variable string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("no binding for variable %q", e.Variable)
}

// UnsupportedDenominatorError is returned by operations that are only
// defined for simple polynomial fractions (denominator 1). Differentiation
// would need the quotient rule and expansion would need rational-function
// multiplication; neither is implemented.
type UnsupportedDenominatorError struct {
	Operation   string
	Denominator float64
}

func (e *UnsupportedDenominatorError) Error() string {
	return fmt.Sprintf("%s requires denominator 1, got %g", e.Operation, e.Denominator)
}

// Warning codes attached to best-effort results.
const (
	WarnInaccurateDenominator = "inaccurate_denominator"
)

// Warning is a non-fatal diagnostic attached to a result. Definite
// integration over a fraction with a non-unit denominator proceeds anyway
// and reports the caveat here instead of failing.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

func warnInaccurateDenominator(denominator float64) Warning {
	return Warning{
		Code:    WarnInaccurateDenominator,
		Message: fmt.Sprintf("definite integral over denominator %g is a best-effort approximation", denominator),
	}
}
