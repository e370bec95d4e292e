package algebra

import (
	"github.com/bytedance/sonic"
	core "github.com/polycalc/polycalc/internal/algebra"
	"github.com/polycalc/polycalc/internal/logging"
	"github.com/polycalc/polycalc/internal/monitoring"
	"github.com/polycalc/polycalc/internal/types"
)

// Ops carries the shared dependencies of the provider's tool modules.
type Ops struct {
	Log     *logging.Logger
	Metrics *monitoring.Metrics
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt extracts an integer-valued number from params
func GetInt(params map[string]interface{}, key string) (int, bool) {
	value, ok := GetNumber(params, key)
	if !ok || value != float64(int(value)) {
		return 0, false
	}
	return int(value), true
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetStrings extracts an array of strings from params
func GetStrings(params map[string]interface{}, key string) ([]string, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	values := make([]string, 0, len(arr))
	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		values = append(values, s)
	}
	return values, true
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		switch num := v.(type) {
		case float64:
			numbers = append(numbers, num)
		case int:
			numbers = append(numbers, float64(num))
		case int64:
			numbers = append(numbers, float64(num))
		case float32:
			numbers = append(numbers, float64(num))
		default:
			return nil, false
		}
	}
	return numbers, true
}

// GetBindings extracts a variable-to-value map from params
func GetBindings(params map[string]interface{}, key string) (map[string]float64, bool) {
	raw, ok := params[key]
	if !ok {
		// absent bindings mean "evaluate with no substitutions"
		return map[string]float64{}, true
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, false
	}

	bindings := make(map[string]float64, len(obj))
	for name, v := range obj {
		switch num := v.(type) {
		case float64:
			bindings[name] = num
		case int:
			bindings[name] = float64(num)
		case int64:
			bindings[name] = float64(num)
		case float32:
			bindings[name] = float64(num)
		default:
			return nil, false
		}
	}
	return bindings, true
}

// GetFraction decodes a wire-form fraction from params
func GetFraction(params map[string]interface{}, key string) (core.Fraction, error) {
	raw, ok := params[key]
	if !ok {
		return core.Fraction{}, &missingParamError{key}
	}
	data, err := sonic.Marshal(raw)
	if err != nil {
		return core.Fraction{}, err
	}
	return core.UnmarshalFraction(data)
}

// GetProduct decodes a wire-form product from params
func GetProduct(params map[string]interface{}, key string) (core.Product, error) {
	raw, ok := params[key]
	if !ok {
		return nil, &missingParamError{key}
	}
	data, err := sonic.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return core.UnmarshalProduct(data)
}

// GetEquation decodes a wire-form equation from params
func GetEquation(params map[string]interface{}, key string) (core.Equation, error) {
	raw, ok := params[key]
	if !ok {
		return nil, &missingParamError{key}
	}
	data, err := sonic.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return core.UnmarshalEquation(data)
}

// GetBounds decodes an ordered list of integration bounds from params.
// JSON arrays keep their order, so the caller's iteration order survives.
func GetBounds(params map[string]interface{}, key string) ([]core.Bound, error) {
	raw, ok := params[key]
	if !ok {
		return nil, &missingParamError{key}
	}
	data, err := sonic.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var bounds []core.Bound
	if err := sonic.Unmarshal(data, &bounds); err != nil {
		return nil, err
	}
	return bounds, nil
}

// FractionData converts a fraction into its wire-form map for result
// payloads.
func FractionData(f core.Fraction) (map[string]interface{}, error) {
	data, err := core.MarshalFraction(f)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := sonic.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type missingParamError struct {
	key string
}

func (e *missingParamError) Error() string {
	return e.key + " parameter required"
}
