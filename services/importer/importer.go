// Package importer turns a user-supplied calendar file into canonical
// show records, bypassing network discovery entirely.
package importer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/catsplus/radiograb-sub001/lib/ics"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

var tracer = otel.Tracer("services/importer")

// Stats summarizes one import run.
type Stats struct {
	EventsProcessed int
	EventsSkipped   int
	ShowsDiscovered int
	ShowsValid      int
}

// Outcome is the import result. Caller-input problems (unreadable
// path, not a calendar) surface in Error with Success=false; they are
// data, not faults.
type Outcome struct {
	Success bool
	Shows   []schedule.Show
	Report  string
	Stats   Stats
	Error   string
}

type Service struct{}

func NewService() Service {
	return Service{}
}

// ImportFile parses a calendar file for the given station. The show
// records carry the station identifier rather than a URL-derived
// label.
func (s Service) ImportFile(ctx context.Context, path, stationID string) Outcome {
	ctx, span := tracer.Start(ctx, "ImportFile")
	defer span.End()
	span.SetAttributes(
		attribute.String("path", path),
		attribute.String("station", stationID),
	)

	contents, err := os.ReadFile(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unreadable file")
		return Outcome{Error: fmt.Sprintf("cannot read %s: %v", path, err)}
	}
	if !ics.IsCalendar(string(contents)) {
		span.SetStatus(codes.Error, "not a calendar")
		return Outcome{Error: fmt.Sprintf("%s does not look like an iCalendar file", path)}
	}

	candidates, parseStats, err := ics.Parse(strings.NewReader(string(contents)), stationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "calendar parse failed")
		return Outcome{Error: fmt.Sprintf("failed to parse %s: %v", path, err)}
	}

	shows, filterStats := schedule.Filter(candidates)

	stats := Stats{
		EventsProcessed: parseStats.EventsProcessed,
		EventsSkipped:   parseStats.EventsSkipped,
		ShowsDiscovered: len(candidates),
		ShowsValid:      len(shows),
	}

	outcome := Outcome{
		Success: len(shows) > 0,
		Shows:   shows,
		Stats:   stats,
		Report:  buildReport(path, stationID, stats, filterStats),
	}
	if !outcome.Success {
		outcome.Error = fmt.Sprintf("no valid shows found in %s", path)
	}
	return outcome
}

func buildReport(path, stationID string, stats Stats, filterStats schedule.FilterStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "imported %s for station %s\n", path, stationID)
	fmt.Fprintf(&b, "events processed: %d (skipped %d)\n", stats.EventsProcessed, stats.EventsSkipped)
	fmt.Fprintf(&b, "shows discovered: %d, valid: %d\n", stats.ShowsDiscovered, stats.ShowsValid)
	if filterStats.DroppedInvalid > 0 {
		fmt.Fprintf(&b, "dropped %d candidates with invalid names or days\n", filterStats.DroppedInvalid)
	}
	if filterStats.DroppedDuplicate > 0 {
		fmt.Fprintf(&b, "dropped %d duplicate candidates\n", filterStats.DroppedDuplicate)
	}
	return b.String()
}
