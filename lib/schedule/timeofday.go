package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time with minute precision, no date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// AddMinutes advances the clock, wrapping past midnight.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	total := (t.Hour*60 + t.Minute + m) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// MinutesUntil measures forward from t to end, wrapping past midnight,
// so a 23:00 show ending 01:00 is 120 minutes.
func (t TimeOfDay) MinutesUntil(end TimeOfDay) int {
	d := (end.Hour*60 + end.Minute) - (t.Hour*60 + t.Minute)
	if d < 0 {
		d += 24 * 60
	}
	return d
}

var time12Regex = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m\.?`)

// ParseTime12 parses "7 PM", "7:30pm", "11:05 a.m." style tokens.
// 12 AM maps to 00, 12 PM stays 12.
func ParseTime12(s string) (TimeOfDay, bool) {
	m := time12Regex.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	if hour < 1 || hour > 12 {
		return TimeOfDay{}, false
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
		if minute > 59 {
			return TimeOfDay{}, false
		}
	}

	pm := strings.EqualFold(m[3], "p")
	if pm && hour < 12 {
		hour += 12
	}
	if !pm && hour == 12 {
		hour = 0
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

var time24Regex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
var time24CompactRegex = regexp.MustCompile(`^(\d{2})(\d{2})$`)

// ParseTime24 parses "19:30", "7:05" and compact "1930" tokens.
func ParseTime24(s string) (TimeOfDay, bool) {
	s = strings.TrimSpace(s)

	m := time24Regex.FindStringSubmatch(s)
	if m == nil {
		m = time24CompactRegex.FindStringSubmatch(s)
	}
	if m == nil {
		return TimeOfDay{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.Valid() {
		return TimeOfDay{}, false
	}
	return t, true
}

// ParseClock tries the 12-hour form first since "7:30" alone is
// ambiguous and station pages overwhelmingly write AM/PM.
func ParseClock(s string) (TimeOfDay, bool) {
	if t, ok := ParseTime12(s); ok {
		return t, true
	}
	return ParseTime24(s)
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseISO parses an ISO8601-ish datetime into its clock time and
// weekday, as found in JSON-LD startDate/endDate values.
func ParseISO(s string) (TimeOfDay, Weekday, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		ts, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return FromTime(ts), WeekdayOf(ts), true
	}
	return TimeOfDay{}, "", false
}

func FromTime(ts time.Time) TimeOfDay {
	return TimeOfDay{Hour: ts.Hour(), Minute: ts.Minute()}
}

func WeekdayOf(ts time.Time) Weekday {
	switch ts.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
