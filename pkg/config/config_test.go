package config

import (
	"errors"
	"strings"
	"testing"
)

func TestParseEmptyDocumentGetsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme.Preset != "nord" {
		t.Errorf("Theme.Preset = %q, want nord", cfg.Theme.Preset)
	}
	if cfg.Theme.Mode != "system" {
		t.Errorf("Theme.Mode = %q, want system", cfg.Theme.Mode)
	}
	if cfg.Display.Columns != 4 {
		t.Errorf("Display.Columns = %d, want 4", cfg.Display.Columns)
	}
	if cfg.Display.Greeting.Enabled == nil || !*cfg.Display.Greeting.Enabled {
		t.Errorf("Display.Greeting.Enabled should default to true")
	}
	if cfg.Display.Greeting.Locale != "en" {
		t.Errorf("Display.Greeting.Locale = %q, want en", cfg.Display.Greeting.Locale)
	}
	if cfg.Display.Datetime.Locale != "en-US" {
		t.Errorf("Display.Datetime.Locale = %q, want en-US", cfg.Display.Datetime.Locale)
	}
	if cfg.Display.Datetime.DateFormat != "full" {
		t.Errorf("Display.Datetime.DateFormat = %q, want full", cfg.Display.Datetime.DateFormat)
	}
	if cfg.Display.HealthCheck.Enabled {
		t.Errorf("Display.HealthCheck.Enabled should default to false")
	}
	if cfg.Display.HealthCheck.Interval != 300 {
		t.Errorf("Display.HealthCheck.Interval = %d, want 300", cfg.Display.HealthCheck.Interval)
	}
	if cfg.Display.HealthCheck.Timeout != 5000 {
		t.Errorf("Display.HealthCheck.Timeout = %d, want 5000", cfg.Display.HealthCheck.Timeout)
	}
	if cfg.Sections == nil || len(cfg.Sections) != 0 {
		t.Errorf("Sections should be an empty slice, got %#v", cfg.Sections)
	}
	if cfg.Widgets == nil || len(cfg.Widgets) != 0 {
		t.Errorf("Widgets should be an empty slice, got %#v", cfg.Widgets)
	}
}

func TestParsePartialDocumentKeepsValues(t *testing.T) {
	doc := `
theme:
  preset: dracula
display:
  columns: 3
  greeting:
    enabled: false
sections:
  - name: Media
    items:
      - name: Jellyfin
        url: https://jellyfin.local
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme.Preset != "dracula" {
		t.Errorf("Theme.Preset = %q, want dracula", cfg.Theme.Preset)
	}
	if cfg.Theme.Mode != "system" {
		t.Errorf("Theme.Mode = %q, want system default", cfg.Theme.Mode)
	}
	if cfg.Display.Columns != 3 {
		t.Errorf("Display.Columns = %d, want 3", cfg.Display.Columns)
	}
	if cfg.Display.Greeting.Enabled == nil || *cfg.Display.Greeting.Enabled {
		t.Errorf("explicit greeting.enabled=false must survive defaulting")
	}
	if len(cfg.Sections) != 1 || cfg.Sections[0].Items[0].URL != "https://jellyfin.local" {
		t.Errorf("unexpected sections: %#v", cfg.Sections)
	}
}

func TestParseEnvSubstitution(t *testing.T) {
	t.Setenv("HOMEDASH_TEST_KEY", "abc123")

	doc := `
widgets:
  - type: weather
    position: top-right
    config:
      apiKey: ${HOMEDASH_TEST_KEY}
      location: ${HOMEDASH_TEST_CITY:-Berlin}
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	w := cfg.Widgets[0]
	if w.Config["apiKey"] != "abc123" {
		t.Errorf("apiKey = %v, want abc123", w.Config["apiKey"])
	}
	if w.Config["location"] != "Berlin" {
		t.Errorf("location = %v, want Berlin", w.Config["location"])
	}
}

func TestParseEnvSubstitutionInNumericFields(t *testing.T) {
	t.Setenv("HOMEDASH_TEST_COLUMNS", "3")

	doc := `
display:
  columns: ${HOMEDASH_TEST_COLUMNS}
  healthCheck:
    enabled: true
    interval: ${HOMEDASH_TEST_HC_INTERVAL:-300}
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Display.Columns != 3 {
		t.Errorf("columns = %d, want 3", cfg.Display.Columns)
	}
	if cfg.Display.HealthCheck.Interval != 300 {
		t.Errorf("healthCheck.interval = %d, want 300", cfg.Display.HealthCheck.Interval)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("sections:\n  - name: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	doc := `
theme:
  mode: sepia
display:
  columns: 9
  healthCheck:
    interval: 5
    timeout: 100
sections:
  - name: ""
    items:
      - name: ""
        url: https://x.local
widgets:
  - type: weather
    position: middle
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error is %T, want ValidationErrors", err)
	}

	wantPaths := []string{
		"theme.mode",
		"display.columns",
		"display.healthCheck.interval",
		"display.healthCheck.timeout",
		"sections[0].name",
		"sections[0].items[0].name",
		"widgets[0].position",
	}
	if len(verrs) != len(wantPaths) {
		t.Fatalf("got %d errors %v, want %d", len(verrs), verrs, len(wantPaths))
	}
	for i, want := range wantPaths {
		if verrs[i].Path != want {
			t.Errorf("error %d path = %q, want %q", i, verrs[i].Path, want)
		}
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Path: "display.columns", Message: "must be between 1 and 6, got 9"},
		{Path: "theme.mode", Message: "bad"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "display.columns") || !strings.Contains(msg, "theme.mode") {
		t.Errorf("Error() = %q, should name every path", msg)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("built-in default must validate, got: %v", err)
	}
	if len(cfg.Sections) == 0 {
		t.Error("built-in default should have at least one section")
	}
}

func TestStripSensitive(t *testing.T) {
	in := map[string]interface{}{
		"location":      "Berlin",
		"apiKey":        "secret1",
		"weatherApiKey": "secret2",
		"access_token":  "secret3",
		"clientSecret":  "secret4",
		"password":      "secret5",
		"nested": map[string]interface{}{
			"ApiKey": "secret6",
			"units":  "metric",
		},
	}

	out := StripSensitive(in)

	if _, ok := out["apiKey"]; ok {
		t.Error("apiKey should be stripped")
	}
	if _, ok := out["weatherApiKey"]; ok {
		t.Error("weatherApiKey should be stripped")
	}
	if _, ok := out["access_token"]; ok {
		t.Error("access_token should be stripped")
	}
	if _, ok := out["clientSecret"]; ok {
		t.Error("clientSecret should be stripped")
	}
	if _, ok := out["password"]; ok {
		t.Error("password should be stripped")
	}
	if out["location"] != "Berlin" {
		t.Error("location should survive")
	}

	nested, ok := out["nested"].(map[string]interface{})
	if !ok {
		t.Fatal("nested map should survive")
	}
	if _, ok := nested["ApiKey"]; ok {
		t.Error("nested ApiKey should be stripped")
	}
	if nested["units"] != "metric" {
		t.Error("nested units should survive")
	}

	// The source map must be untouched.
	if in["apiKey"] != "secret1" {
		t.Error("StripSensitive modified its input")
	}

	// Stripping twice changes nothing further.
	again := StripSensitive(out)
	if len(again) != len(out) {
		t.Error("StripSensitive is not idempotent")
	}
}

func TestClientView(t *testing.T) {
	doc := `
sections:
  - name: Media
    items:
      - name: Jellyfin
        url: https://jellyfin.local
widgets:
  - type: weather
    position: top-right
    refreshInterval: 600
    config:
      apiKey: supersecret
      location: Berlin
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	view := cfg.ClientView()

	if len(view.Widgets) != 1 {
		t.Fatalf("got %d widgets, want 1", len(view.Widgets))
	}
	w := view.Widgets[0]
	if w.Type != "weather" || w.Position != "top-right" || w.RefreshInterval != 600 {
		t.Errorf("widget metadata lost: %#v", w)
	}
	if _, ok := w.Config["apiKey"]; ok {
		t.Error("client view must not contain apiKey")
	}
	if w.Config["location"] != "Berlin" {
		t.Error("client view should keep non-sensitive config")
	}

	// The server-side config keeps the secret.
	if cfg.Widgets[0].Config["apiKey"] != "supersecret" {
		t.Error("ClientView must not modify the source config")
	}
}
