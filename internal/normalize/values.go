package normalize

import (
	"strconv"
	"strings"
)

// String coerces a decoded JSON scalar into a string. Numbers are rendered
// without exponent so numeric phone numbers and zips survive.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Truthy reports whether a decoded JSON value would count as set: non-nil,
// non-empty, non-zero and not false.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

// Map returns v as a mapping, or an empty mapping when v is anything else.
func Map(v any) map[string]any {
	if m, ok := v.(map[string]any); ok && m != nil {
		return m
	}
	return map[string]any{}
}

// List returns v as a list, or nil when v is anything else.
func List(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

// FirstPresent returns the value of the first key that is present in m with a
// value other than nil or "". A false boolean counts as present.
func FirstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}
