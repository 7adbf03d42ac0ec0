package extractor

// Fixed lookup tables shared by the strategies. They are plain
// package constants handed to strategies at construction so tests can
// exercise strategies against fixtures without network access.

// apiEndpoints are well-known REST listing paths probed under the
// station's host.
var apiEndpoints = []string{
	"/wp-json/wp/v2/posts?per_page=50",
	"/wp-json/wp/v2/pages?per_page=50",
	"/wp-json/tribe/events/v1/events",
	"/api/events",
}

// subPages are schedule-named pages tried when endpoint probes find
// nothing.
var subPages = []string{
	"/schedule",
	"/shows",
	"/lineup",
	"/programs",
}

// programKeywords mark a title/content blob as show-like.
var programKeywords = []string{
	"show", "program", "radio", "hour", "music", "live",
	"broadcast", "session", "mix", "playlist", "dj",
}

// navKeywords mark navigational chrome that is never a show.
var navKeywords = []string{
	"contact", "about us", "about", "privacy", "login",
	"subscribe", "donate", "advertise",
}

// tableKeywords qualify an HTML table as schedule-like.
var tableKeywords = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday",
	"saturday", "sunday", "schedule", "programming",
}

// tableFillers are cell values that fill empty slots, not shows.
var tableFillers = map[string]bool{
	"music":       true,
	"programming": true,
	"various":     true,
}

// sheetFillers extends tableFillers for published spreadsheets.
var sheetFillers = map[string]bool{
	"music":       true,
	"programming": true,
	"various":     true,
	"filler":      true,
}

// domEventSelectors match common calendar-widget markup, most
// specific first.
var domEventSelectors = []string{
	".tribe-events-calendar-list__event",
	".event-list li",
	".events-list .event",
	".calendar-event",
	".schedule-item",
	".show-item",
	".program-item",
	"li.event",
	"div.event",
	"[itemtype*='schema.org/Event']",
}

// domTitleSelectors locate the title inside a matched event element.
var domTitleSelectors = ".event-title, .title, .show-name, h2, h3, h4, a"

// domTimeSelectors locate a time string inside a matched element.
var domTimeSelectors = ".event-time, .time, .start-time, time"

// feedPaths are common calendar feed locations tried after anchor
// discovery.
var feedPaths = []string{
	"/events.ics",
	"/calendar.ics",
	"/schedule.ics",
	"/feed/ical",
	"/events/?ical=1",
	"/?ical=1",
}

// exhaustionSuggestions are shown to the operator when every strategy
// comes up empty.
var exhaustionSuggestions = []string{
	"check if the station publishes its schedule as a PDF or image",
	"look for a schedule page that is not linked from the homepage",
	"check the station's social media for schedule posts",
	"upload the station's calendar file directly if you have one",
	"contact the station and ask for a machine-readable schedule",
}
