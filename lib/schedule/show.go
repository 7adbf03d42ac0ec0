// Package schedule defines the canonical show entity produced by
// every extraction strategy, plus the pure normalization helpers
// (clock times, weekdays, genres, hosts) and the validation filter.
package schedule

import (
	"net/url"
	"strings"

	"github.com/catsplus/radiograb-sub001/lib/textutil"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500

	// DefaultDurationMinutes applies when a source names a start
	// but no end.
	DefaultDurationMinutes = 60
)

// Show is one discovered schedule entry. Days holds every weekday the
// show recurs on; a single recurring show stays one record until the
// caller flattens it for output.
type Show struct {
	Name            string
	Start           TimeOfDay
	End             *TimeOfDay
	Days            []Weekday
	Station         string
	Host            string
	Genre           string
	Description     string
	DurationMinutes int
	SourceStrategy  string

	// NeedsReview marks shows whose day could not be determined
	// (days == unknown). They stay schedulable but an operator
	// should confirm them.
	NeedsReview bool
}

// Identity is the dedup key: normalized name, start time and the
// canonical day list. Strategy and description never affect identity.
func (s Show) Identity() string {
	days := NormalizeDays(s.Days)
	parts := make([]string, 0, len(days)+2)
	parts = append(parts, textutil.NormalizeName(s.Name), s.Start.String())
	for _, d := range days {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, "|")
}

// EndOrDefault resolves the end time, falling back to the default
// slot duration.
func (s Show) EndOrDefault() TimeOfDay {
	if s.End != nil {
		return *s.End
	}
	return s.Start.AddMinutes(DefaultDurationMinutes)
}

var placeholderNames = map[string]bool{
	"schedule": true,
	"calendar": true,
	"events":   true,
	"show":     true,
	"program":  true,
	"radio":    true,
	"home":     true,
	"about":    true,
	"contact":  true,
	"archive":  true,
	"past":     true,
	"previous": true,
}

// ValidName rejects empty, purely numeric, single-letter and generic
// placeholder names.
func ValidName(name string) bool {
	name = textutil.CollapseWhitespace(name)
	if name == "" {
		return false
	}
	if len([]rune(name)) == 1 {
		return false
	}
	if textutil.IsNumeric(name) {
		return false
	}
	return !placeholderNames[strings.ToLower(name)]
}

// CleanName collapses whitespace and caps length.
func CleanName(name string) string {
	return textutil.Truncate(textutil.CollapseWhitespace(name), MaxNameLength)
}

func CleanDescription(desc string) string {
	return textutil.Truncate(textutil.CollapseWhitespace(desc), MaxDescriptionLength)
}

// StationLabel derives a station label from the source URL host.
func StationLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
