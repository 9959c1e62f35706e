package config

// boolPtr returns a pointer to b, for defaulting optional booleans.
func boolPtr(b bool) *bool {
	return &b
}

// ApplyDefaults fills every omitted field of the configuration, at every
// nesting level. Defaults are structural: an entirely absent sub-object is
// replaced by its whole default form.
func (c *DashboardConfig) ApplyDefaults() {
	c.Theme.ApplyDefaults()
	c.Display.ApplyDefaults()

	if c.Sections == nil {
		c.Sections = []Section{}
	}
	for i := range c.Sections {
		c.Sections[i].ApplyDefaults()
	}

	if c.Widgets == nil {
		c.Widgets = []WidgetConfig{}
	}
	for i := range c.Widgets {
		c.Widgets[i].ApplyDefaults()
	}
}

// ApplyDefaults applies default values to ThemeConfig.
func (t *ThemeConfig) ApplyDefaults() {
	if t.Preset == "" {
		t.Preset = DefaultThemePreset
	}
	if t.Mode == "" {
		t.Mode = DefaultThemeMode
	}
}

// ApplyDefaults applies default values to DisplayConfig.
func (d *DisplayConfig) ApplyDefaults() {
	if d.Columns == 0 {
		d.Columns = DefaultColumns
	}
	d.Greeting.ApplyDefaults()
	d.Datetime.ApplyDefaults()
	d.HealthCheck.ApplyDefaults()
}

// ApplyDefaults applies default values to GreetingConfig.
func (g *GreetingConfig) ApplyDefaults() {
	if g.Enabled == nil {
		g.Enabled = boolPtr(true)
	}
	if g.Locale == "" {
		g.Locale = DefaultGreetingLocale
	}
}

// ApplyDefaults applies default values to DatetimeConfig.
func (d *DatetimeConfig) ApplyDefaults() {
	if d.Enabled == nil {
		d.Enabled = boolPtr(true)
	}
	if d.Locale == "" {
		d.Locale = DefaultDatetimeLocale
	}
	if d.DateFormat == "" {
		d.DateFormat = DefaultDateFormat
	}
}

// ApplyDefaults applies default values to HealthCheckConfig.
func (h *HealthCheckConfig) ApplyDefaults() {
	if h.Interval == 0 {
		h.Interval = DefaultHealthInterval
	}
	if h.Timeout == 0 {
		h.Timeout = DefaultHealthTimeout
	}
	if h.ShowStatus == nil {
		h.ShowStatus = boolPtr(true)
	}
}

// ApplyDefaults applies default values to Section.
func (s *Section) ApplyDefaults() {
	if s.Items == nil {
		s.Items = []SectionItem{}
	}
}

// ApplyDefaults applies default values to WidgetConfig.
func (w *WidgetConfig) ApplyDefaults() {
	if w.Config == nil {
		w.Config = map[string]interface{}{}
	}
}

// Default returns the built-in configuration used when no configuration
// file exists or the provided one fails to parse or validate: a minimal
// one-section dashboard with no widgets.
func Default() *DashboardConfig {
	cfg := &DashboardConfig{
		Sections: []Section{
			{
				Name: "Getting Started",
				Items: []SectionItem{
					{
						Name:        "Edit Configuration",
						URL:         "https://github.com",
						Icon:        "settings",
						Description: "Edit config/dashboard.yaml to customize",
					},
				},
			},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}
