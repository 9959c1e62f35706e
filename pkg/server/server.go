// Package server provides the dashboard HTTP API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/supporttools/homedash/pkg/config"
	"github.com/supporttools/homedash/pkg/healthcheck"
	"github.com/supporttools/homedash/pkg/logger"
	"github.com/supporttools/homedash/pkg/metrics"
	"github.com/supporttools/homedash/pkg/widgets"
)

// Config contains configuration for the API server.
type Config struct {
	// BindAddress is the address to bind to (default: 0.0.0.0)
	BindAddress string

	// Port is the port to listen on (default: 8080)
	Port int

	// ReadTimeout for HTTP requests
	ReadTimeout time.Duration

	// WriteTimeout for HTTP responses. Must cover a full widget fetch
	// and a full health sweep batch.
	WriteTimeout time.Duration
}

// Server serves the dashboard API.
type Server struct {
	config     *Config
	loader     *config.Loader
	checker    *healthcheck.Checker
	registry   *widgets.Registry
	httpServer *http.Server
	mu         sync.Mutex
	started    bool
	startTime  time.Time
}

// NewServer creates an API server around the given loader and checker.
func NewServer(cfg *Config, loader *config.Loader, checker *healthcheck.Checker) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if loader == nil {
		return nil, fmt.Errorf("loader cannot be nil")
	}
	if checker == nil {
		return nil, fmt.Errorf("checker cannot be nil")
	}

	if cfg.BindAddress == "" {
		cfg.BindAddress = "0.0.0.0"
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 5 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 60 * time.Second
	}

	return &Server{
		config:    cfg,
		loader:    loader,
		checker:   checker,
		registry:  widgets.DefaultRegistry,
		startTime: time.Now(),
	}, nil
}

// Handler returns the full route tree with middleware applied. Split out
// from Start so tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/config", s.route("/api/config", s.handleConfig))
	mux.Handle("/api/health-check", s.route("/api/health-check", s.handleHealthCheck))
	mux.Handle("/api/widget/", s.route("/api/widget", s.handleWidget))
	mux.Handle("/api/widgets", s.route("/api/widgets", s.handleWidgetTypes))
	mux.Handle("/api/themes", s.route("/api/themes", s.handleThemes))
	mux.Handle("/api/themes/", s.route("/api/themes", s.handleTheme))
	mux.Handle("/api/greeting", s.route("/api/greeting", s.handleGreeting))
	mux.Handle("/healthz", s.route("/healthz", s.handleHealthz))
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

// Start starts the API server.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("server already started")
	}

	addr := fmt.Sprintf("%s:%d", s.config.BindAddress, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	go func() {
		logger.WithField("address", addr).Info("Starting API server")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("API server failed")
		}
	}()

	s.started = true
	return nil
}

// Stop shuts the API server down gracefully.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	logger.Info("Stopping API server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.started = false
	return nil
}
