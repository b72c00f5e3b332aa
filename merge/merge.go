// Package merge combines nested string-keyed maps with overlay-wins
// precedence at every nesting level.
package merge

// Maps merges overlay into base and returns a new map. Neither input is
// modified, and the result shares no mutable structure with either input.
//
// For each key in overlay: if both the base value and the overlay value are
// string-keyed maps, they are merged recursively. Any other combination,
// including type mismatches and slices, is a wholesale replacement by the
// overlay value. Keys present only in base are preserved.
func Maps(base, overlay map[string]any) map[string]any {
	out := DeepCopy(base)

	for key, value := range overlay {
		ov, ovIsMap := value.(map[string]any)
		bv, bvIsMap := out[key].(map[string]any)
		if ovIsMap && bvIsMap {
			out[key] = Maps(bv, ov)
			continue
		}
		out[key] = copyValue(value)
	}

	return out
}

// DeepCopy returns a copy of m that shares no mutable structure with m.
// Nested string-keyed maps and []any slices are copied recursively; all
// other values are copied by assignment.
func DeepCopy(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = copyValue(value)
	}
	return out
}

// Value returns a copy of v that shares no mutable structure with v,
// following the same rules as DeepCopy.
func Value(v any) any {
	return copyValue(v)
}

func copyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return DeepCopy(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
