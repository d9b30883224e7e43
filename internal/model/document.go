package model

// Document is a carrier-shaped output: named sections of nested mappings,
// lists and scalars.
type Document map[string]any

// Prune returns a copy of m without, at every nesting level, keys whose value
// is nil or a mapping that is empty once pruned. Maps inside lists are pruned
// too; list elements themselves are never dropped. Falsy scalars such as 0,
// false and "" are kept. m is not modified and shares no maps or lists with
// the result.
func Prune(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if pv, keep := pruneValue(v); keep {
			out[k] = pv
		}
	}
	return out
}

// pruneValue returns the pruned copy of v and whether its key should be kept.
func pruneValue(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		p := Prune(t)
		return p, len(p) > 0
	case Document:
		p := Prune(t)
		return p, len(p) > 0
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			if e == nil {
				continue
			}
			out[i], _ = pruneValue(e)
		}
		return out, true
	default:
		return v, true
	}
}
