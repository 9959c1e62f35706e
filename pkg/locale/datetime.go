package locale

import (
	"time"

	"github.com/supporttools/homedash/pkg/config"
)

// Date layouts per configured format style. "full" and "long" carry the
// weekday, "medium" abbreviates, "short" is numeric only.
var dateLayouts = map[string]string{
	"full":   "Monday, January 2, 2006",
	"long":   "Monday, January 2, 2006",
	"medium": "Mon, Jan 2, 2006",
	"short":  "1/2/2006",
}

// FormatDate renders the date banner according to the datetime settings.
// Unknown format styles fall back to "full".
func FormatDate(cfg config.DatetimeConfig, t time.Time) string {
	layout, ok := dateLayouts[cfg.DateFormat]
	if !ok {
		layout = dateLayouts["full"]
	}
	return t.Format(layout)
}

// FormatTime renders the clock according to the datetime settings.
func FormatTime(cfg config.DatetimeConfig, t time.Time) string {
	var layout string
	switch {
	case cfg.Hour12 && cfg.ShowSeconds:
		layout = "3:04:05 PM"
	case cfg.Hour12:
		layout = "3:04 PM"
	case cfg.ShowSeconds:
		layout = "15:04:05"
	default:
		layout = "15:04"
	}
	return t.Format(layout)
}
