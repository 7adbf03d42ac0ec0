package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

const feedDoc = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\nUID:1@test\r\nDTSTART:20240106T070000\r\nDTEND:20240106T100000\r\n" +
	"RRULE:FREQ=WEEKLY;BYDAY=SA\r\nSUMMARY:Saturday Morning Coffeehouse\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"

func TestCalendarStrategyAnchorDiscovery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><a href="/files/station.ics">Calendar</a></body></html>`))
	})
	mux.HandleFunc("/files/station.ics", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedDoc))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	shows, err := newCalendarStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}

	s := shows[0]
	if s.Name != "Saturday Morning Coffeehouse" {
		t.Errorf("name = %q", s.Name)
	}
	if s.Start != (schedule.TimeOfDay{Hour: 7}) || s.DurationMinutes != 180 {
		t.Errorf("start = %v duration = %d", s.Start, s.DurationMinutes)
	}
	if s.SourceStrategy != "ical_feed" {
		t.Errorf("source = %q", s.SourceStrategy)
	}
}

func TestCalendarStrategyWellKnownPaths(t *testing.T) {
	// no anchor on the homepage, feed only at a common path
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>welcome</p></body></html>`))
	})
	mux.HandleFunc("/calendar.ics", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedDoc))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	shows, err := newCalendarStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}
}

func TestCalendarStrategyRejectsNonCalendar(t *testing.T) {
	// an href that looks calendar-like but serves HTML is skipped
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><a href="/calendar">Events calendar</a></body></html>`))
	})
	mux.HandleFunc("/calendar", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>not a feed</body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	shows, err := newCalendarStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 0 {
		t.Fatalf("expected no shows, got %v", shows)
	}
}
