package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/supporttools/homedash/pkg/envsubst"
	"github.com/supporttools/homedash/pkg/logger"
	"github.com/supporttools/homedash/pkg/metrics"
)

// DefaultConfigPath is used when neither the --config flag nor the
// CONFIG_PATH environment variable is set.
const DefaultConfigPath = "config/dashboard.yaml"

// Parse expands ${VAR} placeholders in the raw document text, decodes the
// result into the schema, applies defaults, and validates. Substitution
// happens before parsing so a placeholder can stand in for any value,
// numeric fields included.
func Parse(raw []byte) (*DashboardConfig, error) {
	expanded := envsubst.Expand(string(raw))

	cfg := &DashboardConfig{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Loader reads the dashboard configuration from disk and caches it.
// Load falls back to the built-in default configuration when the file is
// missing or invalid, so the server always has something to serve.
type Loader struct {
	path string

	mu       sync.RWMutex
	current  *DashboardConfig
	fallback bool
}

// NewLoader creates a Loader for the given path. An empty path falls back
// to the CONFIG_PATH environment variable, then to DefaultConfigPath.
func NewLoader(path string) *Loader {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultConfigPath
	}
	return &Loader{path: path}
}

// Path returns the resolved configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and parses the configuration file, replacing the cached
// configuration. On any failure it logs the cause, caches the built-in
// default instead, and still returns nil so callers keep serving.
func (l *Loader) Load() error {
	cfg, err := l.read()
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"path":  l.path,
			"error": err.Error(),
		}).Warn("Failed to load configuration, using built-in default")
		l.mu.Lock()
		l.current = Default()
		l.fallback = true
		l.mu.Unlock()
		return nil
	}

	l.mu.Lock()
	l.current = cfg
	l.fallback = false
	l.mu.Unlock()

	logger.WithField("path", l.path).Info("Configuration loaded")
	return nil
}

// Reload re-reads the configuration file but keeps the current cached
// configuration when the new document is invalid, unlike Load which
// replaces it with the built-in default.
func (l *Loader) Reload() error {
	cfg, err := l.read()
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"path":  l.path,
			"error": err.Error(),
		}).Warn("Configuration reload failed, keeping previous configuration")
		metrics.ConfigReloadsTotal.WithLabelValues("failure").Inc()
		return err
	}

	l.mu.Lock()
	l.current = cfg
	l.fallback = false
	l.mu.Unlock()

	logger.WithField("path", l.path).Info("Configuration reloaded")
	metrics.ConfigReloadsTotal.WithLabelValues("success").Inc()
	return nil
}

// Config returns the cached configuration, loading it on first use.
func (l *Loader) Config() *DashboardConfig {
	l.mu.RLock()
	cfg := l.current
	l.mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	_ = l.Load()

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// UsingFallback reports whether the cached configuration is the built-in
// default rather than one read from disk.
func (l *Loader) UsingFallback() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fallback
}

func (l *Loader) read() (*DashboardConfig, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}
