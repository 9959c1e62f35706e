package widgets

// Helpers for pulling typed values out of free-form widget config maps.
// Config maps come from YAML so numbers may arrive as int, int64, or
// float64 depending on the document.

func stringValue(cfg map[string]interface{}, key string) string {
	if v, ok := cfg[key].(string); ok {
		return v
	}
	return ""
}

func intValue(cfg map[string]interface{}, key string) int {
	switch v := cfg[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// headerValue extracts a string-to-string map, e.g. extra request headers.
// Non-string values are skipped.
func headerValue(cfg map[string]interface{}, key string) map[string]string {
	raw, ok := cfg[key].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// toFloat converts a decoded JSON number to float64. Anything that is not
// a number converts to 0, matching how chart series treat non-numeric
// entries.
func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
