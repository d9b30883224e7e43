package normalize

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// ErrMalformedData is returned when a semi-structured document cannot be decoded
// into a mapping.
var ErrMalformedData = errors.New("malformed document")

// ParseJSONData accepts an already-decoded mapping, a JSON-encoded string, or
// raw JSON bytes. It always returns a usable (possibly empty) map; the error
// tells callers whether the empty map means "no data" or "could not decode".
func ParseJSONData(v any) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return t, nil
	case string:
		return decodeObject([]byte(t))
	case []byte:
		return decodeObject(t)
	case json.RawMessage:
		return decodeObject(t)
	default:
		return map[string]any{}, fmt.Errorf("%w: unsupported type %T", ErrMalformedData, v)
	}
}

func decodeObject(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{}, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
