package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/supporttools/homedash/pkg/healthcheck"
	"github.com/supporttools/homedash/pkg/locale"
	"github.com/supporttools/homedash/pkg/logger"
	"github.com/supporttools/homedash/pkg/metrics"
	"github.com/supporttools/homedash/pkg/themes"
	"github.com/supporttools/homedash/pkg/widgets"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleConfig serves the client-safe configuration.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, s.loader.Config().ClientView())
}

// HealthCheckResponse is the body of /api/health-check.
type HealthCheckResponse struct {
	Enabled     bool                          `json:"enabled"`
	Message     string                        `json:"message,omitempty"`
	Results     map[string]healthcheck.Result `json:"results,omitempty"`
	CheckedAt   string                        `json:"checkedAt,omitempty"`
	Cached      bool                          `json:"cached,omitempty"`
	NextCheckIn int                           `json:"nextCheckIn,omitempty"`
}

// handleHealthCheck serves link health results, running a full sweep when
// one is due or when ?refresh=true forces it.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cfg := s.loader.Config()
	hc := cfg.Display.HealthCheck

	if !hc.Enabled {
		writeJSON(w, http.StatusOK, HealthCheckResponse{
			Enabled: false,
			Message: "Health checking is disabled in configuration",
		})
		return
	}

	forceRefresh := r.URL.Query().Get("refresh") == "true"
	now := time.Now().UTC().Format(time.RFC3339)

	if forceRefresh || s.checker.SweepDue(hc.IntervalDuration()) {
		s.checker.SetTimeout(hc.TimeoutDuration())
		results := s.checker.CheckAll(r.Context(), healthcheck.ExtractURLs(cfg))
		writeJSON(w, http.StatusOK, HealthCheckResponse{
			Enabled:     true,
			Results:     results,
			CheckedAt:   now,
			NextCheckIn: hc.Interval,
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthCheckResponse{
		Enabled:     true,
		Results:     s.checker.AllCached(),
		CheckedAt:   now,
		Cached:      true,
		NextCheckIn: hc.Interval,
	})
}

// handleWidget serves /api/widget/{type}. A type absent from the
// configuration is 404, a configured but unsupported type is 400, and an
// upstream failure is 200 with a structured error payload.
func (s *Server) handleWidget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	widgetType := strings.TrimPrefix(r.URL.Path, "/api/widget/")
	if widgetType == "" || strings.Contains(widgetType, "/") {
		writeError(w, http.StatusNotFound, "widget type required")
		return
	}

	cfg := s.loader.Config()
	var widgetCfg map[string]interface{}
	found := false
	for _, wc := range cfg.Widgets {
		if wc.Type == widgetType {
			widgetCfg = wc.Config
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Widget type %q not found in configuration", widgetType))
		return
	}

	payload, err := s.registry.Dispatch(r.Context(), widgetType, widgetCfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported widget type: %s", widgetType))
		return
	}

	outcome := "success"
	if _, failed := payload.(widgets.ErrorPayload); failed {
		outcome = "error"
	}
	metrics.WidgetFetchesTotal.WithLabelValues(widgetType, outcome).Inc()

	writeJSON(w, http.StatusOK, payload)
}

// WidgetTypeInfo describes one registered widget type.
type WidgetTypeInfo struct {
	Type           string `json:"type"`
	Description    string `json:"description"`
	Refreshable    bool   `json:"refreshable"`
	RequiresAPIKey bool   `json:"requiresApiKey"`
}

// handleWidgetTypes lists the widget types this server can serve.
func (s *Server) handleWidgetTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names := s.registry.Types()
	out := make([]WidgetTypeInfo, 0, len(names))
	for _, name := range names {
		info := s.registry.Info(name)
		if info == nil {
			continue
		}
		out = append(out, WidgetTypeInfo{
			Type:           info.Type,
			Description:    info.Description,
			Refreshable:    info.Refreshable,
			RequiresAPIKey: info.RequiresAPIKey,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleThemes lists every built-in theme preset.
func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, themes.All())
}

// handleTheme serves a single preset by name.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/themes/")
	preset, ok := themes.Get(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Theme %q not found", name))
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

// GreetingResponse is the body of /api/greeting.
type GreetingResponse struct {
	Enabled  bool   `json:"enabled"`
	Greeting string `json:"greeting,omitempty"`
	Locale   string `json:"locale,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
}

// handleGreeting serves the localized greeting and formatted date/time for
// the dashboard header.
func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cfg := s.loader.Config()
	greeting := cfg.Display.Greeting
	if greeting.Enabled != nil && !*greeting.Enabled {
		writeJSON(w, http.StatusOK, GreetingResponse{Enabled: false})
		return
	}

	loc := greeting.Locale
	if override := r.URL.Query().Get("locale"); override != "" {
		loc = override
	}

	now := time.Now()
	writeJSON(w, http.StatusOK, GreetingResponse{
		Enabled:  true,
		Greeting: locale.Greeting(loc, now),
		Locale:   loc,
		Date:     locale.FormatDate(cfg.Display.Datetime, now),
		Time:     locale.FormatTime(cfg.Display.Datetime, now),
	})
}

// HealthzResponse is the body of /healthz.
type HealthzResponse struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Uptime     string    `json:"uptime"`
	ConfigPath string    `json:"configPath"`
	Fallback   bool      `json:"fallback"`
}

// handleHealthz is the liveness probe for the server itself, distinct from
// the link health endpoint under /api.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthzResponse{
		Status:     "healthy",
		Timestamp:  time.Now(),
		Uptime:     time.Since(s.startTime).Round(time.Second).String(),
		ConfigPath: s.loader.Path(),
		Fallback:   s.loader.UsingFallback(),
	})
}
