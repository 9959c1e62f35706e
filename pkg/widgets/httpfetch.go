package widgets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/supporttools/homedash/pkg/logger"
)

const (
	// fetchTimeout bounds any single upstream widget fetch.
	fetchTimeout = 10 * time.Second

	// maxResponseBody caps how much upstream JSON gets read.
	maxResponseBody = 1 << 20
)

var httpClient = &http.Client{
	Timeout: fetchTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	},
}

// fetchJSON performs a GET against an upstream API and decodes the JSON
// response. apiKey, when set, is sent as a bearer token. extraHeaders are
// applied after the defaults so callers can override Accept.
func fetchJSON(ctx context.Context, endpoint, apiKey string, extraHeaders map[string]string) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return data, nil
}

// logFetchError logs an upstream failure without exposing it to the client.
func logFetchError(widgetType string, err error) {
	logger.WithFields(map[string]interface{}{
		"widget": widgetType,
		"error":  err.Error(),
	}).Warn("Widget fetch failed")
}
