package widgets

import (
	"context"
	"time"
)

// InfoData is the payload for the single-value info widget.
type InfoData struct {
	Value     interface{} `json:"value"`
	Timestamp string      `json:"timestamp"`
}

func init() {
	MustRegister(HandlerInfo{
		Type:        "info",
		Handler:     fetchInfo,
		Description: "Single value extracted from a JSON API",
		Refreshable: true,
	})
}

// fetchInfo queries an arbitrary JSON API and extracts one value by the
// configured dotted path.
func fetchInfo(ctx context.Context, cfg map[string]interface{}) interface{} {
	endpoint := stringValue(cfg, "apiEndpoint")
	if endpoint == "" {
		return ErrorPayload{Error: "Info API endpoint not configured"}
	}

	data, err := fetchJSON(ctx, endpoint, stringValue(cfg, "apiKey"), headerValue(cfg, "headers"))
	if err != nil {
		logFetchError("info", err)
		return ErrorPayload{Error: "Failed to fetch info data"}
	}

	value, _ := Lookup(data, stringValue(cfg, "valueKey"))
	return InfoData{
		Value:     value,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
