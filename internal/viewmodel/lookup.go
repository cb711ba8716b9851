package viewmodel

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Lookup resolves a dotted field path (e.g. "extractionMetadata.keyFindings")
// against nested map data. Any absent segment, or traversal through a value
// that is not a map, yields def. It never panics; rendering falls back to
// placeholders instead of failing. The resolved value is normalized before
// being returned.
func Lookup(data map[string]any, path string, def any) any {
	if data == nil || path == "" {
		return def
	}

	current := any(data)
	for _, seg := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current, ok = m[seg]
		if !ok {
			return def
		}
	}

	if current == nil {
		return def
	}
	return Normalize(current)
}

// Normalize converts decimal-encoded numbers to native types, recursively
// across maps and slices: zero fractional part becomes int64, anything
// else float64. Values already native pass through unchanged.
func Normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		return normalizeNumber(string(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			out = append(out, Normalize(e))
		}
		return out
	default:
		return v
	}
}

func normalizeNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == math.Trunc(f) && math.Abs(f) < float64(math.MaxInt64) {
		return int64(f)
	}
	return f
}
