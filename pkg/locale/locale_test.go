package locale

import (
	"testing"
	"time"

	"github.com/supporttools/homedash/pkg/config"
)

func at(hour int) time.Time {
	return time.Date(2026, time.February, 4, hour, 30, 45, 0, time.UTC)
}

func TestGreetingPeriods(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good Night"},
		{4, "Good Night"},
		{5, "Good Morning"},
		{11, "Good Morning"},
		{12, "Good Afternoon"},
		{16, "Good Afternoon"},
		{17, "Good Evening"},
		{20, "Good Evening"},
		{21, "Good Night"},
		{23, "Good Night"},
	}

	for _, tt := range tests {
		if got := Greeting("en", at(tt.hour)); got != tt.want {
			t.Errorf("Greeting(en, %02d:00) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestGreetingLocales(t *testing.T) {
	tests := []struct {
		locale string
		hour   int
		want   string
	}{
		{"de", 9, "Guten Morgen"},
		{"de", 19, "Guten Abend"},
		{"fr", 9, "Bonjour"},
		{"ja", 13, "こんにちは"},
		{"zh", 22, "晚安"},
	}

	for _, tt := range tests {
		if got := Greeting(tt.locale, at(tt.hour)); got != tt.want {
			t.Errorf("Greeting(%s, %02d:00) = %q, want %q", tt.locale, tt.hour, got, tt.want)
		}
	}
}

func TestGreetingLocaleFallback(t *testing.T) {
	// Regional variants resolve to their base language.
	if got := Greeting("de-AT", at(9)); got != "Guten Morgen" {
		t.Errorf("Greeting(de-AT) = %q, want Guten Morgen", got)
	}
	if got := Greeting("en-GB", at(9)); got != "Good Morning" {
		t.Errorf("Greeting(en-GB) = %q, want Good Morning", got)
	}
	// Unsupported languages fall back to English.
	if got := Greeting("xx", at(9)); got != "Good Morning" {
		t.Errorf("Greeting(xx) = %q, want Good Morning", got)
	}
	if got := Greeting("", at(9)); got != "Good Morning" {
		t.Errorf("Greeting(\"\") = %q, want Good Morning", got)
	}
}

func TestAvailableLocales(t *testing.T) {
	locales := AvailableLocales()
	if len(locales) != 12 {
		t.Fatalf("got %d locales, want 12", len(locales))
	}
	if locales[0] != "en" {
		t.Errorf("first locale = %q, want en", locales[0])
	}
	for _, l := range locales {
		if !IsSupported(l) {
			t.Errorf("locale %q listed but not supported", l)
		}
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2026, time.February, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"full", "Wednesday, February 4, 2026"},
		{"long", "Wednesday, February 4, 2026"},
		{"medium", "Wed, Feb 4, 2026"},
		{"short", "2/4/2026"},
		{"bogus", "Wednesday, February 4, 2026"},
	}

	for _, tt := range tests {
		cfg := config.DatetimeConfig{DateFormat: tt.format}
		if got := FormatDate(cfg, date); got != tt.want {
			t.Errorf("FormatDate(%s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	moment := time.Date(2026, time.February, 4, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		hour12      bool
		showSeconds bool
		want        string
	}{
		{false, false, "14:30"},
		{false, true, "14:30:45"},
		{true, false, "2:30 PM"},
		{true, true, "2:30:45 PM"},
	}

	for _, tt := range tests {
		cfg := config.DatetimeConfig{Hour12: tt.hour12, ShowSeconds: tt.showSeconds}
		if got := FormatTime(cfg, moment); got != tt.want {
			t.Errorf("FormatTime(hour12=%v, seconds=%v) = %q, want %q", tt.hour12, tt.showSeconds, got, tt.want)
		}
	}
}
