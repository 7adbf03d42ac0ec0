package extractor

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/catsplus/radiograb-sub001/lib/fetch"
	"github.com/catsplus/radiograb-sub001/lib/htmlutil"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
	"github.com/catsplus/radiograb-sub001/lib/textutil"
)

// apiStrategy probes well-known REST listing endpoints (wordpress
// posts/pages, events plugins) under the station host. Entries that
// look show-like become low-confidence candidates with placeholder
// times; the strategy is a fallback, not a primary source.
type apiStrategy struct {
	client *resty.Client
}

func newAPIStrategy() *apiStrategy {
	return &apiStrategy{client: fetch.NewClient(fetch.FeedTimeout)}
}

func (s *apiStrategy) Name() string { return "structured_api" }

// wpText models wordpress-style {"rendered": "..."} fields while
// tolerating plain strings.
type wpText struct {
	Rendered string
}

func (t *wpText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		t.Rendered = plain
		return nil
	}
	var obj struct {
		Rendered string `json:"rendered"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.Rendered = obj.Rendered
	return nil
}

type apiEntry struct {
	Title   wpText `json:"title"`
	Name    string `json:"name"`
	Content wpText `json:"content"`
	Excerpt wpText `json:"excerpt"`
}

func (e apiEntry) title() string {
	if e.Title.Rendered != "" {
		return e.Title.Rendered
	}
	return e.Name
}

func (s *apiStrategy) Extract(ctx context.Context, stationURL string) ([]schedule.Show, error) {
	base, err := url.Parse(stationURL)
	if err != nil {
		return nil, err
	}
	root := base.Scheme + "://" + base.Host
	station := schedule.StationLabel(stationURL)

	for _, endpoint := range apiEndpoints {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		body, err := fetch.GetString(ctx, s.client, root+endpoint)
		if err != nil {
			slog.DebugContext(ctx, "endpoint probe failed", "endpoint", endpoint, "err", err)
			continue
		}

		shows := s.parseListing(body, station)
		if len(shows) > 0 {
			return shows, nil
		}
	}

	// nothing structured: try schedule-named sub-pages with the
	// weekday-grid table walk
	for _, page := range subPages {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		body, err := fetch.GetString(ctx, s.client, root+page)
		if err != nil {
			continue
		}
		doc, err := htmlutil.DocumentFromString(body)
		if err != nil {
			continue
		}
		shows := parseScheduleTables(doc, stationURL, gridOptions{
			timeColumnDefault: 0,
			slotMinutes:       60,
			fillers:           tableFillers,
			djLabel:           "DJ",
			source:            s.Name(),
		})
		if len(shows) > 0 {
			return shows, nil
		}
	}

	return nil, nil
}

// parseListing filters listing entries down to show-like ones. Every
// match gets the placeholder slot: 09:00 for an hour on monday.
func (s *apiStrategy) parseListing(body, station string) []schedule.Show {
	var entries []apiEntry
	if err := json.Unmarshal([]byte(body), &entries); err != nil {
		// events plugins wrap the list in an envelope
		var envelope struct {
			Events []apiEntry `json:"events"`
		}
		if err := json.Unmarshal([]byte(body), &envelope); err != nil {
			return nil
		}
		entries = envelope.Events
	}

	var shows []schedule.Show
	for _, entry := range entries {
		title := htmlutil.StripTags(entry.title())
		blob := strings.ToLower(title + " " + entry.Content.Rendered + " " + entry.Excerpt.Rendered)

		if !textutil.ContainsAny(blob, programKeywords) {
			continue
		}
		if textutil.ContainsAny(strings.ToLower(title), navKeywords) {
			continue
		}

		end := schedule.TimeOfDay{Hour: 10, Minute: 0}
		shows = append(shows, schedule.Show{
			Name:            schedule.CleanName(title),
			Start:           schedule.TimeOfDay{Hour: 9, Minute: 0},
			End:             &end,
			Days:            []schedule.Weekday{schedule.Monday},
			Station:         station,
			Genre:           schedule.ClassifyGenre(blob),
			Description:     schedule.CleanDescription(htmlutil.StripTags(entry.Excerpt.Rendered)),
			DurationMinutes: schedule.DefaultDurationMinutes,
			SourceStrategy:  s.Name(),
			NeedsReview:     true,
		})
	}
	return shows
}
