// Package themes holds the built-in color presets. Each preset carries a
// full light and dark palette; the client applies one of the two based on
// the configured theme mode.
package themes

// Colors is one palette. Values are CSS color strings, OKLCH for most
// presets and hex for Dracula.
type Colors struct {
	Background            string `json:"background"`
	Foreground            string `json:"foreground"`
	Card                  string `json:"card"`
	CardForeground        string `json:"cardForeground"`
	Popover               string `json:"popover"`
	PopoverForeground     string `json:"popoverForeground"`
	Primary               string `json:"primary"`
	PrimaryForeground     string `json:"primaryForeground"`
	Secondary             string `json:"secondary"`
	SecondaryForeground   string `json:"secondaryForeground"`
	Muted                 string `json:"muted"`
	MutedForeground       string `json:"mutedForeground"`
	Accent                string `json:"accent"`
	AccentForeground      string `json:"accentForeground"`
	Destructive           string `json:"destructive"`
	DestructiveForeground string `json:"destructiveForeground"`
	Border                string `json:"border"`
	Input                 string `json:"input"`
	Ring                  string `json:"ring"`
}

// Preset is a named theme with light and dark palettes.
type Preset struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Light       Colors `json:"light"`
	Dark        Colors `json:"dark"`
}

// presetOrder is the canonical listing order for the API.
var presetOrder = []string{"nord", "catppuccin", "dracula", "gruvbox", "tokyo-night", "rose-pine"}

var presets = map[string]*Preset{
	"nord":        &nord,
	"catppuccin":  &catppuccin,
	"dracula":     &dracula,
	"gruvbox":     &gruvbox,
	"tokyo-night": &tokyoNight,
	"rose-pine":   &rosePine,
}

// Get returns the preset with the given name.
func Get(name string) (*Preset, bool) {
	p, ok := presets[name]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// Names returns the preset names in canonical order.
func Names() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// All returns every preset in canonical order.
func All() []Preset {
	out := make([]Preset, 0, len(presetOrder))
	for _, name := range presetOrder {
		out = append(out, *presets[name])
	}
	return out
}
