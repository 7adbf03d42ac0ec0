// Package ics turns iCalendar documents into canonical show records.
// It is shared by the network calendar-feed strategy and the file
// importer, and is deliberately tolerant: malformed events are skipped
// and counted, never fatal.
package ics

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/catsplus/radiograb-sub001/lib/htmlutil"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

// Stats reports what happened during a parse for the import report.
type Stats struct {
	EventsProcessed int
	EventsSkipped   int
}

// IsCalendar reports whether content looks like an iCalendar
// document.
func IsCalendar(content string) bool {
	return strings.Contains(content, "BEGIN:VCALENDAR")
}

// Parse walks every VEVENT and emits one show per event that has a
// usable name and a timed start. Recurrence rules are resolved into
// the show's weekday set. Candidates are not filtered here; callers
// run schedule.Filter once per pipeline.
func Parse(r io.Reader, station string) ([]schedule.Show, Stats, error) {
	var stats Stats

	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, stats, err
	}

	var shows []schedule.Show
	for _, event := range cal.Events() {
		stats.EventsProcessed++

		show, ok := parseEvent(event, station)
		if !ok {
			stats.EventsSkipped++
			continue
		}
		shows = append(shows, show)
	}
	return shows, stats, nil
}

func propValue(event *ical.VEvent, prop ical.ComponentProperty) string {
	p := event.GetProperty(prop)
	if p == nil {
		return ""
	}
	return p.Value
}

var icsTimestampLayouts = []string{
	"20060102T150405Z",
	"20060102T150405",
}

// parseTimestamp reads an ICS date-time value as a literal clock
// time. All-day values ("20060102" or VALUE=DATE) report timed=false.
func parseTimestamp(event *ical.VEvent, prop ical.ComponentProperty) (t schedule.TimeOfDay, day schedule.Weekday, timed bool) {
	p := event.GetProperty(prop)
	if p == nil {
		return schedule.TimeOfDay{}, "", false
	}
	for _, v := range p.ICalParameters["VALUE"] {
		if v == "DATE" {
			return schedule.TimeOfDay{}, "", false
		}
	}

	value := strings.TrimSpace(p.Value)
	for _, layout := range icsTimestampLayouts {
		if len(value) != len(layout) {
			continue
		}
		hour, err1 := strconv.Atoi(value[9:11])
		minute, err2 := strconv.Atoi(value[11:13])
		if err1 != nil || err2 != nil {
			continue
		}
		tod := schedule.TimeOfDay{Hour: hour, Minute: minute}
		if !tod.Valid() {
			return schedule.TimeOfDay{}, "", false
		}

		// the date part gives the event's own weekday, used when
		// no recurrence rule names days
		_, wd, ok := schedule.ParseISO(value[0:4] + "-" + value[4:6] + "-" + value[6:8] + "T00:00:00")
		if !ok {
			return schedule.TimeOfDay{}, "", false
		}
		return tod, wd, true
	}
	return schedule.TimeOfDay{}, "", false
}

func parseEvent(event *ical.VEvent, station string) (schedule.Show, bool) {
	name := CleanEventName(propValue(event, ical.ComponentPropertySummary))
	if name == "" {
		return schedule.Show{}, false
	}

	start, startDay, timed := parseTimestamp(event, ical.ComponentPropertyDtStart)
	if !timed {
		// all-day markers are not schedulable broadcasts
		return schedule.Show{}, false
	}

	show := schedule.Show{
		Name:           name,
		Start:          start,
		Station:        station,
		SourceStrategy: "ical",
	}

	if end, _, ok := parseTimestamp(event, ical.ComponentPropertyDtEnd); ok {
		e := end
		show.End = &e
		show.DurationMinutes = start.MinutesUntil(end)
	} else if minutes, ok := parseDuration(propValue(event, ical.ComponentProperty(ical.PropertyDuration))); ok {
		e := start.AddMinutes(minutes)
		show.End = &e
		show.DurationMinutes = minutes
	} else {
		e := start.AddMinutes(schedule.DefaultDurationMinutes)
		show.End = &e
		show.DurationMinutes = schedule.DefaultDurationMinutes
	}

	show.Days = resolveRecurrence(propValue(event, ical.ComponentPropertyRrule), startDay)

	desc := htmlutil.StripTags(propValue(event, ical.ComponentPropertyDescription))
	show.Description = schedule.CleanDescription(desc)

	combined := name + " " + desc
	show.Host = schedule.ExtractHost(combined)
	show.Genre = schedule.ClassifyGenre(combined)

	return show, true
}

// resolveRecurrence maps an RRULE onto the weekday set:
// weekly+BYDAY is the union of the listed days, weekly without BYDAY
// falls back to the start event's weekday, daily means every day, and
// no rule at all means the single start weekday.
func resolveRecurrence(rule string, startDay schedule.Weekday) []schedule.Weekday {
	if rule == "" {
		return []schedule.Weekday{startDay}
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return []schedule.Weekday{startDay}
	}

	switch opt.Freq {
	case rrule.DAILY:
		return schedule.AllWeekdays()
	case rrule.WEEKLY:
		if len(opt.Byweekday) == 0 {
			return []schedule.Weekday{startDay}
		}
		var days []schedule.Weekday
		for _, wd := range opt.Byweekday {
			if d, ok := schedule.ParseWeekday(wd.String()); ok {
				days = append(days, d)
			}
		}
		if len(days) == 0 {
			return []schedule.Weekday{startDay}
		}
		return days
	default:
		return []schedule.Weekday{startDay}
	}
}

var durationRegex = regexp.MustCompile(`^-?P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// parseDuration reads an ISO8601 duration ("PT1H30M") into minutes.
func parseDuration(value string) (int, bool) {
	m := durationRegex.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, false
	}
	days := atoiDefault(m[1])
	hours := atoiDefault(m[2])
	minutes := atoiDefault(m[3])

	total := days*24*60 + hours*60 + minutes
	if total <= 0 {
		return 0, false
	}
	return total, true
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

var roleLabelRegex = regexp.MustCompile(`(?i)^(?:live|radio|show|on[- ]air)\s*:\s*`)
var trailingParenRegex = regexp.MustCompile(`\s*\([^()]*\)\s*$`)

// CleanEventName strips leading role labels ("LIVE:", "RADIO:"),
// trailing parenthetical notes, collapses whitespace and caps length.
func CleanEventName(name string) string {
	name = schedule.CleanName(name)
	name = roleLabelRegex.ReplaceAllString(name, "")
	name = trailingParenRegex.ReplaceAllString(name, "")
	return schedule.CleanName(name)
}
