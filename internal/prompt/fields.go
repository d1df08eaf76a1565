package prompt

import "encoding/json"

// Fields is the loose bag of template-specific values a script request may
// carry (title, subject, audience, ...; keys vary per template). Only a
// small set of value kinds is allowed to reach the model context; anything
// else is dropped at substitution time rather than rejected earlier, so
// clients with extra UI state in their payloads still work.
type Fields map[string]any

// Sanitized returns a copy keeping only scalar values and arrays of
// scalars. Nested objects and other kinds are dropped.
func (f Fields) Sanitized() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		switch val := v.(type) {
		case string, bool, float64, int, int64, json.Number:
			out[k] = val
		case []string:
			out[k] = val
		case []any:
			scalars := make([]any, 0, len(val))
			ok := true
			for _, item := range val {
				switch item.(type) {
				case string, bool, float64, int, int64, json.Number:
					scalars = append(scalars, item)
				default:
					ok = false
				}
				if !ok {
					break
				}
			}
			if ok {
				out[k] = scalars
			}
		}
	}
	return out
}

// Str returns the string value for key, or fallback when absent or not a
// string.
func (f Fields) Str(key, fallback string) string {
	if v, ok := f[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
