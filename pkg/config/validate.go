package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a single schema violation at a field path.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is an ordered list of schema violations. Validation
// accumulates every violation rather than stopping at the first.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration against the schema constraints.
// It returns nil or a ValidationErrors listing every violation in document
// order. ApplyDefaults must run first; Validate never fills defaults itself.
func (c *DashboardConfig) Validate() error {
	var errs ValidationErrors

	add := func(path, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if !validThemeModes[c.Theme.Mode] {
		add("theme.mode", "must be one of light, dark, system, got %q", c.Theme.Mode)
	}

	if c.Display.Columns < MinColumns || c.Display.Columns > MaxColumns {
		add("display.columns", "must be between %d and %d, got %d", MinColumns, MaxColumns, c.Display.Columns)
	}
	if !validDateFormats[c.Display.Datetime.DateFormat] {
		add("display.datetime.dateFormat", "must be one of full, long, medium, short, got %q", c.Display.Datetime.DateFormat)
	}
	if c.Display.HealthCheck.Interval < MinHealthInterval {
		add("display.healthCheck.interval", "must be at least %d seconds, got %d", MinHealthInterval, c.Display.HealthCheck.Interval)
	}
	if c.Display.HealthCheck.Timeout < MinHealthTimeout || c.Display.HealthCheck.Timeout > MaxHealthTimeout {
		add("display.healthCheck.timeout", "must be between %d and %d milliseconds, got %d", MinHealthTimeout, MaxHealthTimeout, c.Display.HealthCheck.Timeout)
	}

	for i, section := range c.Sections {
		if section.Name == "" {
			add(fmt.Sprintf("sections[%d].name", i), "is required")
		}
		for j, item := range section.Items {
			if item.Name == "" {
				add(fmt.Sprintf("sections[%d].items[%d].name", i, j), "is required")
			}
		}
	}

	for i, widget := range c.Widgets {
		if widget.Type == "" {
			add(fmt.Sprintf("widgets[%d].type", i), "is required")
		}
		if !validPositions[widget.Position] {
			add(fmt.Sprintf("widgets[%d].position", i), "must be one of the six quadrant positions, got %q", widget.Position)
		}
		if widget.Variant != "" && !validVariants[widget.Variant] {
			add(fmt.Sprintf("widgets[%d].variant", i), "must be one of info, icon-info, chart, got %q", widget.Variant)
		}
		if widget.RefreshInterval < 0 {
			add(fmt.Sprintf("widgets[%d].refreshInterval", i), "must be positive, got %d", widget.RefreshInterval)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
