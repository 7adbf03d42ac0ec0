package extractor

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/catsplus/radiograb-sub001/lib/htmlutil"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

func TestDOMWidgets(t *testing.T) {
	doc, err := htmlutil.DocumentFromString(`<html><body>
<ul class="event-list">
  <li><h3>Morning Jazz</h3> <span class="time">7:00 AM</span> every Monday</li>
  <li><h3>Schedule</h3> <span class="time">8:00 AM</span></li>
  <li><h3>Night Owls</h3> no time in here</li>
  <li><h3>Late Talk</h3> <span class="time">11:00 PM</span></li>
</ul>
</body></html>`)
	if err != nil {
		t.Fatal(err)
	}

	// "Schedule" is a placeholder name, "Night Owls" has no time
	shows := (&domStrategy{}).parseWidgets(doc, "wxyz")
	if len(shows) != 2 {
		t.Fatalf("expected 2 shows, got %d: %v", len(shows), shows)
	}

	jazz := shows[0]
	if jazz.Name != "Morning Jazz" || jazz.Start != (schedule.TimeOfDay{Hour: 7}) {
		t.Errorf("got %+v", jazz)
	}
	if diff := cmp.Diff([]schedule.Weekday{schedule.Monday}, jazz.Days); diff != "" {
		t.Fatal(diff)
	}
	if jazz.NeedsReview {
		t.Error("day was found, review flag should be clear")
	}

	talk := shows[1]
	if talk.Days[0] != schedule.Unknown || !talk.NeedsReview {
		t.Errorf("dayless show must be unknown and flagged: %+v", talk)
	}
}

func TestJSONLD(t *testing.T) {
	doc, err := htmlutil.DocumentFromString(`<html><head>
<script type="application/ld+json">
[
  {"@type": "Event", "name": "Folk Revival", "startDate": "2024-01-06T10:00:00", "endDate": "2024-01-06T12:00:00"},
  {"@type": "Event", "name": "Dayless", "startDate": "not-a-date"},
  {"@type": "Organization", "name": "The Station"}
]
</script>
</head><body></body></html>`)
	if err != nil {
		t.Fatal(err)
	}

	shows := (&domStrategy{}).parseJSONLD(doc, "wxyz")
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d: %v", len(shows), shows)
	}

	s := shows[0]
	if s.Name != "Folk Revival" {
		t.Errorf("name = %q", s.Name)
	}
	if s.Start != (schedule.TimeOfDay{Hour: 10}) {
		t.Errorf("start = %v", s.Start)
	}
	// 2024-01-06 is a saturday
	if diff := cmp.Diff([]schedule.Weekday{schedule.Saturday}, s.Days); diff != "" {
		t.Fatal(diff)
	}
	if s.DurationMinutes != 120 {
		t.Errorf("duration = %d, expected 120", s.DurationMinutes)
	}
}

func TestJSONLDDefaultDuration(t *testing.T) {
	doc, err := htmlutil.DocumentFromString(`<html><head>
<script type="application/ld+json">
{"@type": "Event", "name": "Quick News", "startDate": "2024-01-08T08:00:00"}
</script>
</head><body></body></html>`)
	if err != nil {
		t.Fatal(err)
	}

	shows := (&domStrategy{}).parseJSONLD(doc, "wxyz")
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}
	if shows[0].DurationMinutes != 60 {
		t.Errorf("duration = %d, expected default 60", shows[0].DurationMinutes)
	}
}

func TestDOMStrategyEndToEnd(t *testing.T) {
	server := serve(t, `<html><body>
<div class="calendar-event">
  <h2>Saturday Morning Coffeehouse</h2>
  <span class="event-time">7:00 AM</span>
  <p>Acoustic music every Saturday, hosted by Dave Higgs.</p>
</div>
</body></html>`)

	shows, err := newDOMStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}

	s := shows[0]
	if s.Days[0] != schedule.Saturday {
		t.Errorf("days = %v", s.Days)
	}
	if s.Host != "Dave Higgs" {
		t.Errorf("host = %q", s.Host)
	}
	if s.Genre != "music" {
		t.Errorf("genre = %q", s.Genre)
	}
}
