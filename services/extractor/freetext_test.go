package extractor

import (
	"context"
	"testing"

	"github.com/catsplus/radiograb-sub001/lib/schedule"
	"github.com/catsplus/radiograb-sub001/lib/telemetry"
)

func TestFreetextStrategy(t *testing.T) {
	server := serve(t, `<html><body>
<p>Tune in at 6:00 AM - The Early Bird Breakfast Club, then stick
around at 9 AM for Mid-Morning Melodies with your favorite hosts.</p>
</body></html>`)

	shows, err := newFreetextStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 2 {
		t.Fatalf("expected 2 shows, got %d: %v", len(shows), shows)
	}

	first := shows[0]
	if first.Start != (schedule.TimeOfDay{Hour: 6}) {
		t.Errorf("start = %v", first.Start)
	}
	if first.Days[0] != schedule.Unknown || !first.NeedsReview {
		t.Error("freetext candidates carry the unknown day and review flag")
	}
	if first.End != nil {
		t.Error("freetext candidates have no end time")
	}
}

func TestFreetextStrategyNoMatches(t *testing.T) {
	server := serve(t, `<html><body><p>A station history page with no
schedule information anywhere on it.</p></body></html>`)

	shows, err := newFreetextStrategy().Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(shows) != 0 {
		t.Fatalf("expected no shows, got %v", shows)
	}
}

// a page with no tables, no JSON-LD, no feed links and no
// weekday-bearing text must exhaust the whole pipeline.
func TestPipelineExhaustion(t *testing.T) {
	defer telemetry.SetupForTesting(t, "extractor")()

	server := serve(t, `<html><body><p>Welcome to our station.</p></body></html>`)

	result := NewService(Options{}).Extract(context.Background(), server.URL)
	if result.Success {
		t.Fatal("expected failure")
	}
	if len(result.Shows) != 0 {
		t.Error("shows must be empty")
	}
	if len(result.Suggestions) == 0 {
		t.Error("suggestions must be populated")
	}
	if result.StrategyUsed != "" {
		t.Errorf("strategy_used = %q", result.StrategyUsed)
	}
}
