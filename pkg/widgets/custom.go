package widgets

import "context"

func init() {
	MustRegister(HandlerInfo{
		Type:        "custom",
		Handler:     fetchCustom,
		Description: "Raw JSON passthrough from a configured API",
		Refreshable: true,
	})
}

// fetchCustom proxies a JSON API response through unmodified. The upstream
// shape is the widget's contract, not ours.
func fetchCustom(ctx context.Context, cfg map[string]interface{}) interface{} {
	endpoint := stringValue(cfg, "apiEndpoint")
	if endpoint == "" {
		return ErrorPayload{Error: "Custom API endpoint not configured"}
	}

	data, err := fetchJSON(ctx, endpoint, stringValue(cfg, "apiKey"), headerValue(cfg, "headers"))
	if err != nil {
		logFetchError("custom", err)
		return ErrorPayload{Error: "Failed to fetch custom data"}
	}
	return data
}
