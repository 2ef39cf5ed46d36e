package registry

import (
	"github.com/cadenza-ml/cadenza/pkg/errors"
)

// StringSlice coerces a decoded parameter value into a string slice.
// Pipeline definition files decode lists as []interface{}; programmatic
// callers pass []string directly.
func StringSlice(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New(errors.ErrorTypeConfig, "list items must be strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrorTypeConfig, "expected a list of strings")
	}
}

// Bool coerces a decoded parameter value into a bool
func Bool(raw interface{}) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, errors.New(errors.ErrorTypeConfig, "expected a boolean")
	}
	return b, nil
}
