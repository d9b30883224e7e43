package formatter

import (
	"github.com/medsupp/appformat/internal/medicare"
	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/normalize"
	"github.com/medsupp/appformat/internal/refdata"
)

// intake is the decoded, carrier-agnostic view of one application shared by
// every carrier variant.
type intake struct {
	app       *model.Application
	data      map[string]any
	applicant map[string]any
	medicare  map[string]any
	payment   map[string]any
	facts     medicare.Facts
	producer  refdata.Producer
	ref       Reference
}

func (in *intake) section(name string) map[string]any {
	return normalize.Map(in.data[name])
}

// str reads a scalar from m as a string.
func str(m map[string]any, key string) string {
	return normalize.String(m[key])
}

// date stamps a date-only field, or returns nil when it is empty.
func date(m map[string]any, key string) any {
	return stamp(str(m, key))
}

func stamp(s string) any {
	if p := normalize.FormatDate(s); p != nil {
		return *p
	}
	return nil
}

// optBool turns a tri-state flag into a document value; nil stays nil.
func optBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}

// nonEmpty returns s, or nil for "".
func nonEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// copySection makes a shallow copy so defaults never leak into the intake.
func copySection(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// setDefault assigns v to key only when key is absent or nil.
func setDefault(m map[string]any, key string, v any) {
	if cur, ok := m[key]; !ok || cur == nil {
		m[key] = v
	}
}

// tobacco reads the tobacco flag from either legacy field name.
func tobacco(applicant map[string]any) any {
	return normalize.FirstPresent(applicant, "tobacco_usage", "tobacco")
}
