package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/supporttools/homedash/pkg/config"
	"github.com/supporttools/homedash/pkg/healthcheck"
	"github.com/supporttools/homedash/pkg/themes"
)

func newTestServer(t *testing.T, configYAML string) *Server {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	loader := config.NewLoader(path)
	if err := loader.Load(); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	srv, err := NewServer(&Config{}, loader, healthcheck.NewChecker(time.Second))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return srv
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

const testConfig = `
sections:
  - name: Media
    items:
      - name: Jellyfin
        url: https://jellyfin.local
widgets:
  - type: search
    position: top-center
  - type: weather
    position: top-right
    config:
      apiKey: supersecret
      location: Berlin
  - type: mystery
    position: bottom-left
`

func TestConfigEndpointStripsSecrets(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/config")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var view config.ClientConfig
	decode(t, rec, &view)

	if len(view.Sections) != 1 || view.Sections[0].Name != "Media" {
		t.Errorf("sections = %#v", view.Sections)
	}

	for _, w := range view.Widgets {
		if _, ok := w.Config["apiKey"]; ok {
			t.Errorf("widget %q leaked apiKey to client", w.Type)
		}
	}

	var hasLocation bool
	for _, w := range view.Widgets {
		if w.Config["location"] == "Berlin" {
			hasLocation = true
		}
	}
	if !hasLocation {
		t.Error("non-sensitive widget config should reach the client")
	}
}

func TestConfigEndpointMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, testConfig)
	req := httptest.NewRequest(http.MethodPost, "/api/config", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestWidgetEndpointStaticType(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/widget/search")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	decode(t, rec, &body)
	if body["message"] != "No server data needed for this widget type" {
		t.Errorf("body = %#v", body)
	}
}

func TestWidgetEndpointNotConfigured(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/widget/clock")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for a type absent from config", rec.Code)
	}
}

func TestWidgetEndpointUnsupportedType(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/widget/mystery")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for configured but unsupported type", rec.Code)
	}
}

func TestWidgetTypesEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/widgets")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var infos []WidgetTypeInfo
	decode(t, rec, &infos)

	found := map[string]bool{}
	for _, info := range infos {
		found[info.Type] = true
	}
	for _, want := range []string{"weather", "info", "chart", "custom", "search", "clock"} {
		if !found[want] {
			t.Errorf("widget type %q missing from listing", want)
		}
	}
}

func TestThemesEndpoints(t *testing.T) {
	srv := newTestServer(t, testConfig)

	rec := get(t, srv.Handler(), "/api/themes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var all []themes.Preset
	decode(t, rec, &all)
	if len(all) != 6 {
		t.Errorf("got %d presets, want 6", len(all))
	}

	rec = get(t, srv.Handler(), "/api/themes/nord")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var preset themes.Preset
	decode(t, rec, &preset)
	if preset.Name != "nord" || preset.Light.Background == "" {
		t.Errorf("preset = %#v", preset)
	}

	rec = get(t, srv.Handler(), "/api/themes/solarized")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown preset", rec.Code)
	}
}

func TestGreetingEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/greeting")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body GreetingResponse
	decode(t, rec, &body)
	if !body.Enabled {
		t.Error("greeting should be enabled by default")
	}
	if body.Greeting == "" || body.Date == "" || body.Time == "" {
		t.Errorf("incomplete greeting response: %+v", body)
	}
}

func TestGreetingEndpointDisabled(t *testing.T) {
	srv := newTestServer(t, `
display:
  greeting:
    enabled: false
`)
	rec := get(t, srv.Handler(), "/api/greeting")

	var body GreetingResponse
	decode(t, rec, &body)
	if body.Enabled {
		t.Error("greeting should report disabled")
	}
	if body.Greeting != "" {
		t.Error("disabled greeting should carry no text")
	}
}

func TestGreetingEndpointLocaleOverride(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/greeting?locale=de")

	var body GreetingResponse
	decode(t, rec, &body)
	if body.Locale != "de" {
		t.Errorf("locale = %q, want de", body.Locale)
	}
}

func TestHealthCheckEndpointDisabled(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/health-check")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body HealthCheckResponse
	decode(t, rec, &body)
	if body.Enabled {
		t.Error("health checking is off in this config")
	}
	if body.Message == "" {
		t.Error("disabled response should carry a message")
	}
}

func TestHealthCheckEndpointSweep(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	srv := newTestServer(t, `
display:
  healthCheck:
    enabled: true
    interval: 300
    timeout: 2000
sections:
  - name: Media
    items:
      - name: Upstream
        url: `+upstream.URL+`
`)

	rec := get(t, srv.Handler(), "/api/health-check")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body HealthCheckResponse
	decode(t, rec, &body)
	if !body.Enabled {
		t.Fatal("health checking should be enabled")
	}
	if body.Cached {
		t.Error("first request should run a fresh sweep")
	}
	result, ok := body.Results[upstream.URL]
	if !ok {
		t.Fatalf("no result for %s: %#v", upstream.URL, body.Results)
	}
	if result.Status != healthcheck.StatusHealthy {
		t.Errorf("status = %q, want healthy", result.Status)
	}
	if body.NextCheckIn != 300 {
		t.Errorf("nextCheckIn = %d, want 300", body.NextCheckIn)
	}

	// A second request within the interval serves from cache.
	rec = get(t, srv.Handler(), "/api/health-check")
	decode(t, rec, &body)
	if !body.Cached {
		t.Error("second request should be served from cache")
	}

	// refresh=true forces a sweep regardless of the interval. Reset the
	// struct first: json.Unmarshal leaves fields untouched when their keys
	// are absent, and the fresh-sweep response omits "cached".
	rec = get(t, srv.Handler(), "/api/health-check?refresh=true")
	body = HealthCheckResponse{}
	decode(t, rec, &body)
	if body.Cached {
		t.Error("refresh=true should force a fresh sweep")
	}
}

func TestHealthzEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body HealthzResponse
	decode(t, rec, &body)
	if body.Status != "healthy" {
		t.Errorf("status = %q, want healthy", body.Status)
	}
	if body.Fallback {
		t.Error("fallback should be false for a valid config file")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, testConfig)
	rec := get(t, srv.Handler(), "/api/config")

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("responses should carry a request id")
	}
}
