package widgets

import (
	"context"
	"fmt"
)

// ChartData is the payload for the time-series chart widget. The summary
// values are pointers so they are omitted entirely when the series is empty.
type ChartData struct {
	Values       []float64 `json:"values"`
	Labels       []string  `json:"labels"`
	CurrentValue *float64  `json:"currentValue,omitempty"`
	MinValue     *float64  `json:"minValue,omitempty"`
	MaxValue     *float64  `json:"maxValue,omitempty"`
}

func init() {
	MustRegister(HandlerInfo{
		Type:        "chart",
		Handler:     fetchChart,
		Description: "Numeric series extracted from a JSON API",
		Refreshable: true,
	})
}

// fetchChart queries a JSON API and coerces the response into a numeric
// series with optional labels.
func fetchChart(ctx context.Context, cfg map[string]interface{}) interface{} {
	endpoint := stringValue(cfg, "apiEndpoint")
	if endpoint == "" {
		return ErrorPayload{Error: "Chart API endpoint not configured"}
	}

	data, err := fetchJSON(ctx, endpoint, stringValue(cfg, "apiKey"), headerValue(cfg, "headers"))
	if err != nil {
		logFetchError("chart", err)
		return ErrorPayload{Error: "Failed to fetch chart data"}
	}

	dataKey := stringValue(cfg, "dataKey")
	labelKey := stringValue(cfg, "labelKey")
	maxDataPoints := intValue(cfg, "maxDataPoints")

	// A top-level array is the series; otherwise the series is looked up
	// by dataKey. A scalar lookup result becomes a one-element series.
	var series []interface{}
	if arr, ok := data.([]interface{}); ok {
		series = arr
	} else if nested, ok := Lookup(data, dataKey); ok && nested != nil {
		if arr, ok := nested.([]interface{}); ok {
			series = arr
		} else {
			series = []interface{}{nested}
		}
	}

	if maxDataPoints > 0 && len(series) > maxDataPoints {
		series = series[len(series)-maxDataPoints:]
	}

	values := make([]float64, 0, len(series))
	for _, item := range series {
		switch v := item.(type) {
		case float64, int, int64:
			values = append(values, toFloat(v))
		case map[string]interface{}:
			nested, _ := Lookup(v, dataKey)
			values = append(values, toFloat(nested))
		default:
			values = append(values, 0)
		}
	}

	labels := make([]string, 0)
	if labelKey != "" {
		for _, item := range series {
			if m, ok := item.(map[string]interface{}); ok {
				if nested, ok := Lookup(m, labelKey); ok && nested != nil {
					labels = append(labels, fmt.Sprintf("%v", nested))
					continue
				}
			}
			labels = append(labels, "")
		}
	}

	out := ChartData{Values: values, Labels: labels}
	if len(values) > 0 {
		current := values[len(values)-1]
		min, max := values[0], values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		out.CurrentValue = &current
		out.MinValue = &min
		out.MaxValue = &max
	}
	return out
}
