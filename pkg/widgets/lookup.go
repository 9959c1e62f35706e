package widgets

import "strings"

// Lookup walks a decoded JSON value along a dot-separated path, e.g.
// "data.price". An empty path returns the value itself. The second return
// is false when any segment is missing or the walk hits a non-object.
func Lookup(v interface{}, path string) (interface{}, bool) {
	if path == "" {
		return v, true
	}

	current := v
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
