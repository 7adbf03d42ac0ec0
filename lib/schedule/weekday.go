package schedule

import (
	"sort"
	"strings"
)

// Weekday is a canonical lowercase day name. Unknown is a real,
// distinct value used when a source never names a day: it matches
// nothing else and is never treated as a wildcard.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
	Unknown   Weekday = "unknown"
)

var weekdayOrder = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// icsDayCodes maps RRULE BYDAY two-letter codes.
var icsDayCodes = map[string]Weekday{
	"MO": Monday,
	"TU": Tuesday,
	"WE": Wednesday,
	"TH": Thursday,
	"FR": Friday,
	"SA": Saturday,
	"SU": Sunday,
}

func AllWeekdays() []Weekday {
	out := make([]Weekday, len(weekdayOrder))
	copy(out, weekdayOrder)
	return out
}

// Index orders monday..sunday then unknown, for stable output.
func (w Weekday) Index() int {
	for i, d := range weekdayOrder {
		if d == w {
			return i
		}
	}
	return len(weekdayOrder)
}

func (w Weekday) Title() string {
	if len(w) == 0 {
		return ""
	}
	return strings.ToUpper(string(w[0])) + string(w[1:])
}

// ParseWeekday accepts full names, common 3-letter abbreviations and
// ICS BYDAY codes.
func ParseWeekday(token string) (Weekday, bool) {
	token = strings.TrimSpace(token)
	if d, ok := icsDayCodes[strings.ToUpper(token)]; ok {
		return d, true
	}

	token = strings.ToLower(token)
	for _, d := range weekdayOrder {
		if token == string(d) {
			return d, true
		}
	}
	// abbreviations: the token must be a prefix of the day name, at
	// least 3 letters so "t" and "s" stay ambiguous
	if len(token) >= 3 {
		for _, d := range weekdayOrder {
			if strings.HasPrefix(string(d), token) {
				return d, true
			}
		}
	}
	return "", false
}

// FindWeekday scans free text for the first day name it contains.
func FindWeekday(text string) (Weekday, bool) {
	text = strings.ToLower(text)
	for _, d := range weekdayOrder {
		if strings.Contains(text, string(d)) {
			return d, true
		}
	}
	return "", false
}

// NormalizeDays collapses duplicates and sorts days into canonical
// order, unknown last.
func NormalizeDays(days []Weekday) []Weekday {
	seen := map[Weekday]bool{}
	var out []Weekday
	for _, d := range days {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index() < out[j].Index()
	})
	return out
}
