package widgets

import "context"

// StaticAck is the payload for widgets that render entirely client-side.
type StaticAck struct {
	Message string `json:"message"`
}

// staticHandler returns the same acknowledgement for every fetch.
func staticHandler(ctx context.Context, cfg map[string]interface{}) interface{} {
	return StaticAck{Message: "No server data needed for this widget type"}
}

func init() {
	MustRegister(HandlerInfo{
		Type:        "search",
		Handler:     staticHandler,
		Description: "Search bar, rendered entirely client-side",
	})
	MustRegister(HandlerInfo{
		Type:        "clock",
		Handler:     staticHandler,
		Description: "Clock, rendered entirely client-side",
	})
}
