// Package healthcheck probes the reachability of dashboard links. Probes go
// to the URL origin only, run in small concurrent batches, and results are
// cached between sweeps so the dashboard can poll cheaply.
package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/supporttools/homedash/pkg/config"
	"github.com/supporttools/homedash/pkg/logger"
	"github.com/supporttools/homedash/pkg/metrics"
)

const (
	// BatchSize is the number of links probed concurrently per batch.
	BatchSize = 5

	// DefaultTimeout is the per-probe timeout when none is configured.
	DefaultTimeout = 5 * time.Second

	// maxProbeBody caps how much of a probe response body gets drained.
	maxProbeBody = 1 << 20
)

// Link health states.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusUnknown   = "unknown"
)

// Result is the outcome of probing a single link.
type Result struct {
	URL          string    `json:"url"`
	Status       string    `json:"status"`
	ResponseTime int64     `json:"responseTime"`
	StatusCode   int       `json:"statusCode,omitempty"`
	LastChecked  time.Time `json:"lastChecked"`
	Error        string    `json:"error,omitempty"`
}

// Checker probes link origins and caches the results.
type Checker struct {
	client  *http.Client
	timeout time.Duration

	mu        sync.RWMutex
	cache     map[string]Result
	lastSweep time.Time
}

// NewChecker creates a Checker with the given per-probe timeout.
func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	// Per-probe deadlines come from the request context, so the shared
	// client carries no timeout of its own.
	return &Checker{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		timeout: timeout,
		cache:   make(map[string]Result),
	}
}

// SetTimeout updates the per-probe timeout, e.g. after a config reload.
func (c *Checker) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c.mu.Lock()
	c.timeout = timeout
	c.mu.Unlock()
}

// originOf reduces a URL to its scheme://host origin. Probing the origin
// instead of the full URL avoids tripping auth walls on deep paths.
func originOf(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("not an absolute URL")
	}
	return u.Scheme + "://" + u.Host, nil
}

// CheckOne probes a single link and returns its result. The result is not
// written to the cache; CheckAll handles caching.
func (c *Checker) CheckOne(ctx context.Context, link string) Result {
	result := Result{
		URL:         link,
		Status:      StatusUnknown,
		LastChecked: time.Now(),
	}

	origin, err := originOf(link)
	if err != nil {
		result.Error = "Invalid URL"
		return result
	}

	c.mu.RLock()
	timeout := c.timeout
	c.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, origin, nil)
	if err != nil {
		result.Error = "Invalid URL"
		return result
	}
	req.Header.Set("User-Agent", "homedash-healthcheck/1.0")

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)
	result.ResponseTime = elapsed.Milliseconds()
	metrics.ProbeDuration.Observe(elapsed.Seconds())

	if err != nil {
		result.Status = StatusUnhealthy
		result.Error = classifyError(err)
		metrics.LinkUp.WithLabelValues(origin).Set(0)
		return result
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxProbeBody))
		resp.Body.Close()
	}()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		result.Status = StatusHealthy
		metrics.LinkUp.WithLabelValues(origin).Set(1)
	} else {
		result.Status = StatusUnhealthy
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
		metrics.LinkUp.WithLabelValues(origin).Set(0)
	}
	return result
}

// classifyError maps transport errors to the messages shown in the UI.
func classifyError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Request timed out"
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}

// ExtractURLs collects the link URLs from all sections, preserving first
// occurrence order and dropping duplicates. Empty URLs and the "#"
// placeholder are skipped.
func ExtractURLs(cfg *config.DashboardConfig) []string {
	seen := make(map[string]bool)
	var urls []string
	for _, section := range cfg.Sections {
		for _, item := range section.Items {
			if item.URL == "" || item.URL == "#" {
				continue
			}
			if seen[item.URL] {
				continue
			}
			seen[item.URL] = true
			urls = append(urls, item.URL)
		}
	}
	return urls
}

// CheckAll probes every URL in batches of BatchSize and returns the results
// keyed by URL. Each batch's results are written to the cache as the batch
// completes, so a poller sees partial progress during a slow sweep.
func (c *Checker) CheckAll(ctx context.Context, urls []string) map[string]Result {
	results := make(map[string]Result, len(urls))

	for start := 0; start < len(urls); start += BatchSize {
		end := start + BatchSize
		if end > len(urls) {
			end = len(urls)
		}
		batch := urls[start:end]

		batchResults := make([]Result, len(batch))
		var wg sync.WaitGroup
		for i, link := range batch {
			wg.Add(1)
			go func(i int, link string) {
				defer wg.Done()
				batchResults[i] = c.CheckOne(ctx, link)
			}(i, link)
		}
		wg.Wait()

		c.mu.Lock()
		for _, r := range batchResults {
			c.cache[r.URL] = r
			results[r.URL] = r
		}
		c.mu.Unlock()
	}

	c.mu.Lock()
	c.lastSweep = time.Now()
	c.mu.Unlock()

	metrics.SweepsTotal.Inc()
	logger.WithField("links", len(urls)).Debug("Completed link health sweep")
	return results
}

// SweepDue reports whether a full sweep should run, i.e. whether the last
// sweep is older than the interval. A checker that has never swept is due.
func (c *Checker) SweepDue(interval time.Duration) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastSweep.IsZero() {
		return true
	}
	return time.Since(c.lastSweep) >= interval
}

// LastSweep returns the time of the last completed full sweep.
func (c *Checker) LastSweep() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSweep
}

// Cached returns the cached result for a URL, if any.
func (c *Checker) Cached(link string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.cache[link]
	return r, ok
}

// AllCached returns a copy of every cached result keyed by URL.
func (c *Checker) AllCached() map[string]Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]Result, len(c.cache))
	for k, v := range c.cache {
		out[k] = v
	}
	return out
}

// Clear drops all cached results and resets the sweep clock, forcing the
// next poll to run a full sweep.
func (c *Checker) Clear() {
	c.mu.Lock()
	c.cache = make(map[string]Result)
	c.lastSweep = time.Time{}
	c.mu.Unlock()
}
