// Package config defines the dashboard configuration schema, applies its
// defaults, validates documents, and loads them with fallback to a built-in
// configuration. It also derives the client-safe view with sensitive widget
// settings stripped.
package config

import (
	"time"
)

// Package-level defaults
const (
	DefaultThemePreset    = "nord"
	DefaultThemeMode      = "system"
	DefaultColumns        = 4
	DefaultGreetingLocale = "en"
	DefaultDatetimeLocale = "en-US"
	DefaultDateFormat     = "full"
	DefaultHealthInterval = 300  // seconds
	DefaultHealthTimeout  = 5000 // milliseconds

	MinColumns        = 1
	MaxColumns        = 6
	MinHealthInterval = 30    // seconds
	MinHealthTimeout  = 1000  // milliseconds
	MaxHealthTimeout  = 30000 // milliseconds
)

// Widget positions (screen quadrants)
const (
	PositionTopLeft      = "top-left"
	PositionTopCenter    = "top-center"
	PositionTopRight     = "top-right"
	PositionBottomLeft   = "bottom-left"
	PositionBottomCenter = "bottom-center"
	PositionBottomRight  = "bottom-right"
)

// Package-level variables for validation
var (
	validThemeModes = map[string]bool{
		"light":  true,
		"dark":   true,
		"system": true,
	}

	validDateFormats = map[string]bool{
		"full":   true,
		"long":   true,
		"medium": true,
		"short":  true,
	}

	validPositions = map[string]bool{
		PositionTopLeft:      true,
		PositionTopCenter:    true,
		PositionTopRight:     true,
		PositionBottomLeft:   true,
		PositionBottomCenter: true,
		PositionBottomRight:  true,
	}

	validVariants = map[string]bool{
		"info":      true,
		"icon-info": true,
		"chart":     true,
	}
)

// DashboardConfig is the top-level configuration structure.
// After ApplyDefaults and a successful Validate every field holds a concrete
// value; nothing downstream needs to handle "missing."
type DashboardConfig struct {
	// Theme selects the color preset and light/dark mode
	Theme ThemeConfig `json:"theme" yaml:"theme"`

	// Display contains layout and header settings
	Display DisplayConfig `json:"display" yaml:"display"`

	// Sections contains the ordered link groups
	Sections []Section `json:"sections" yaml:"sections"`

	// Widgets contains the ordered widget instances
	Widgets []WidgetConfig `json:"widgets" yaml:"widgets"`
}

// ThemeConfig selects the color preset and mode.
type ThemeConfig struct {
	Preset string `json:"preset,omitempty" yaml:"preset,omitempty"`
	Mode   string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// DisplayConfig contains layout and header settings.
type DisplayConfig struct {
	// Columns is the number of section columns (1-6)
	Columns int `json:"columns,omitempty" yaml:"columns,omitempty"`

	Greeting    GreetingConfig    `json:"greeting" yaml:"greeting"`
	Datetime    DatetimeConfig    `json:"datetime" yaml:"datetime"`
	HealthCheck HealthCheckConfig `json:"healthCheck" yaml:"healthCheck"`
}

// GreetingConfig configures the localized greeting banner.
// Enabled is a pointer so an omitted key can default to true.
type GreetingConfig struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Locale  string `json:"locale,omitempty" yaml:"locale,omitempty"`
}

// DatetimeConfig configures the clock/date banner.
type DatetimeConfig struct {
	Enabled     *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Locale      string `json:"locale,omitempty" yaml:"locale,omitempty"`
	Hour12      bool   `json:"hour12" yaml:"hour12"`
	ShowSeconds bool   `json:"showSeconds" yaml:"showSeconds"`
	DateFormat  string `json:"dateFormat,omitempty" yaml:"dateFormat,omitempty"`
}

// HealthCheckConfig configures link reachability monitoring.
type HealthCheckConfig struct {
	// Enabled turns link health checking on; off by default
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Interval is the minimum time between full sweeps, in seconds
	Interval int `json:"interval,omitempty" yaml:"interval,omitempty"`

	// Timeout is the per-probe timeout, in milliseconds
	Timeout int `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// ShowStatus controls whether link status is rendered in the UI
	ShowStatus *bool `json:"showStatus,omitempty" yaml:"showStatus,omitempty"`
}

// IntervalDuration returns the sweep interval as a time.Duration.
func (h HealthCheckConfig) IntervalDuration() time.Duration {
	return time.Duration(h.Interval) * time.Second
}

// TimeoutDuration returns the per-probe timeout as a time.Duration.
func (h HealthCheckConfig) TimeoutDuration() time.Duration {
	return time.Duration(h.Timeout) * time.Millisecond
}

// Section is a named group of links.
type Section struct {
	Name  string        `json:"name" yaml:"name"`
	Icon  string        `json:"icon,omitempty" yaml:"icon,omitempty"`
	Items []SectionItem `json:"items" yaml:"items"`
}

// SectionItem is a single link entry. URL is an opaque string; the value
// "#" marks a non-link entry that is never health-checked.
type SectionItem struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// WidgetConfig is a single widget instance. Type is an open string at the
// schema level; unknown types are rejected at dispatch time, not here.
type WidgetConfig struct {
	Type     string `json:"type" yaml:"type"`
	Position string `json:"position" yaml:"position"`
	Variant  string `json:"variant,omitempty" yaml:"variant,omitempty"`

	// RefreshInterval is how often the UI refetches this widget, in seconds
	RefreshInterval int `json:"refreshInterval,omitempty" yaml:"refreshInterval,omitempty"`

	// Config contains widget-type-specific settings as a free-form map.
	// Each handler parses this according to its needs. Server-side only
	// keys (API keys, tokens) live here and are stripped for the client.
	Config map[string]interface{} `json:"config" yaml:"config"`
}
