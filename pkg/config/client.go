package config

import (
	"strings"
)

// sensitiveKeySubstrings marks widget config keys that must never reach the
// client. Matching is case-insensitive and by substring, so "apiKey",
// "weatherApiKey", and "access_token" are all stripped.
var sensitiveKeySubstrings = []string{
	"apikey",
	"token",
	"secret",
	"password",
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeySubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// StripSensitive returns a copy of a widget config map with sensitive keys
// removed at every nesting level. The input map is never modified.
func StripSensitive(cfg map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(cfg))
	for k, v := range cfg {
		if isSensitiveKey(k) {
			continue
		}
		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = StripSensitive(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// ClientConfig is the projection of DashboardConfig that is safe to send to
// browsers. It mirrors the full configuration except that widget config maps
// have their sensitive keys stripped.
type ClientConfig struct {
	Theme    ThemeConfig    `json:"theme"`
	Display  DisplayConfig  `json:"display"`
	Sections []Section      `json:"sections"`
	Widgets  []ClientWidget `json:"widgets"`
}

// ClientWidget is a widget instance as exposed to the client.
type ClientWidget struct {
	Type            string                 `json:"type"`
	Position        string                 `json:"position"`
	Variant         string                 `json:"variant,omitempty"`
	RefreshInterval int                    `json:"refreshInterval,omitempty"`
	Config          map[string]interface{} `json:"config"`
}

// ClientView builds the client-safe projection of the configuration.
func (c *DashboardConfig) ClientView() *ClientConfig {
	widgets := make([]ClientWidget, len(c.Widgets))
	for i, w := range c.Widgets {
		widgets[i] = ClientWidget{
			Type:            w.Type,
			Position:        w.Position,
			Variant:         w.Variant,
			RefreshInterval: w.RefreshInterval,
			Config:          StripSensitive(w.Config),
		}
	}

	sections := make([]Section, len(c.Sections))
	copy(sections, c.Sections)

	return &ClientConfig{
		Theme:    c.Theme,
		Display:  c.Display,
		Sections: sections,
		Widgets:  widgets,
	}
}
