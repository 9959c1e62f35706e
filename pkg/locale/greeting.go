// Package locale provides the localized greeting and the date/time
// formatting used by the dashboard header.
package locale

import (
	"sort"
	"time"

	"golang.org/x/text/language"
)

// Time of day boundaries, 24-hour clock.
const (
	MorningStart   = 5
	AfternoonStart = 12
	EveningStart   = 17
	NightStart     = 21
)

type greetingSet struct {
	Morning   string
	Afternoon string
	Evening   string
	Night     string
}

var greetings = map[string]greetingSet{
	"en": {"Good Morning", "Good Afternoon", "Good Evening", "Good Night"},
	"de": {"Guten Morgen", "Guten Tag", "Guten Abend", "Gute Nacht"},
	"fr": {"Bonjour", "Bon après-midi", "Bonsoir", "Bonne nuit"},
	"es": {"Buenos días", "Buenas tardes", "Buenas noches", "Buenas noches"},
	"it": {"Buongiorno", "Buon pomeriggio", "Buonasera", "Buonanotte"},
	"pt": {"Bom dia", "Boa tarde", "Boa noite", "Boa noite"},
	"nl": {"Goedemorgen", "Goedemiddag", "Goedenavond", "Goedenacht"},
	"pl": {"Dzień dobry", "Dzień dobry", "Dobry wieczór", "Dobranoc"},
	"ru": {"Доброе утро", "Добрый день", "Добрый вечер", "Доброй ночи"},
	"ja": {"おはようございます", "こんにちは", "こんばんは", "おやすみなさい"},
	"zh": {"早上好", "下午好", "晚上好", "晚安"},
	"ko": {"좋은 아침이에요", "안녕하세요", "좋은 저녁이에요", "안녕히 주무세요"},
}

// matcher maps arbitrary BCP 47 tags onto the supported greeting locales,
// so "en-GB" and "de-AT" resolve to "en" and "de". English is first and is
// therefore the fallback for unknown locales.
var (
	matcherTags []language.Tag
	matcherKeys []string
	matcher     language.Matcher
)

func init() {
	matcherKeys = append(matcherKeys, "en")
	for key := range greetings {
		if key != "en" {
			matcherKeys = append(matcherKeys, key)
		}
	}
	sort.Strings(matcherKeys[1:])
	for _, key := range matcherKeys {
		matcherTags = append(matcherTags, language.Make(key))
	}
	matcher = language.NewMatcher(matcherTags)
}

// resolveLocale returns the supported greeting locale closest to the
// requested one, falling back to English.
func resolveLocale(locale string) string {
	if _, ok := greetings[locale]; ok {
		return locale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return "en"
	}
	return matcherKeys[index]
}

// periodOf maps an hour to the time-of-day period.
func periodOf(hour int) string {
	switch {
	case hour >= MorningStart && hour < AfternoonStart:
		return "morning"
	case hour >= AfternoonStart && hour < EveningStart:
		return "afternoon"
	case hour >= EveningStart && hour < NightStart:
		return "evening"
	default:
		return "night"
	}
}

// Greeting returns the localized greeting for the given time.
func Greeting(locale string, t time.Time) string {
	set := greetings[resolveLocale(locale)]
	switch periodOf(t.Hour()) {
	case "morning":
		return set.Morning
	case "afternoon":
		return set.Afternoon
	case "evening":
		return set.Evening
	default:
		return set.Night
	}
}

// AvailableLocales returns the supported greeting locales, English first
// then the rest sorted.
func AvailableLocales() []string {
	out := make([]string, len(matcherKeys))
	copy(out, matcherKeys)
	return out
}

// IsSupported reports whether the locale has its own greeting table.
func IsSupported(locale string) bool {
	_, ok := greetings[locale]
	return ok
}
