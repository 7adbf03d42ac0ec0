package extractor

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/catsplus/radiograb-sub001/lib/fetch"
	"github.com/catsplus/radiograb-sub001/lib/htmlutil"
	"github.com/catsplus/radiograb-sub001/lib/ics"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

// calendarStrategy discovers an iCalendar feed on the station site:
// first from anchors pointing at calendar-like hrefs, then from a
// fixed set of common feed paths.
type calendarStrategy struct {
	pageClient *resty.Client
	feedClient *resty.Client
}

func newCalendarStrategy() *calendarStrategy {
	return &calendarStrategy{
		pageClient: fetch.NewClient(fetch.PageTimeout),
		feedClient: fetch.NewClient(fetch.FeedTimeout),
	}
}

func (s *calendarStrategy) Name() string { return "ical_feed" }

func calendarLikeHref(href string) bool {
	h := strings.ToLower(href)
	return strings.HasSuffix(h, ".ics") ||
		strings.Contains(h, "ical") ||
		strings.Contains(h, "calendar")
}

func (s *calendarStrategy) Extract(ctx context.Context, stationURL string) ([]schedule.Show, error) {
	candidates := s.discoverFeedURLs(ctx, stationURL)

	station := schedule.StationLabel(stationURL)
	for _, feedURL := range candidates {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		body, err := fetch.GetString(ctx, s.feedClient, feedURL)
		if err != nil {
			slog.DebugContext(ctx, "feed candidate failed", "url", feedURL, "err", err)
			continue
		}
		if !ics.IsCalendar(body) {
			continue
		}

		shows, stats, err := ics.Parse(strings.NewReader(body), station)
		if err != nil {
			slog.WarnContext(ctx, "calendar parse failed", "url", feedURL, "err", err)
			continue
		}
		slog.DebugContext(ctx, "parsed calendar feed",
			"url", feedURL,
			"events", stats.EventsProcessed,
			"skipped", stats.EventsSkipped,
		)
		if len(shows) > 0 {
			for i := range shows {
				shows[i].SourceStrategy = s.Name()
			}
			return shows, nil
		}
	}
	return nil, nil
}

// discoverFeedURLs returns anchor-derived candidates first, then the
// well-known paths. Order matters: an explicit link beats a guess.
func (s *calendarStrategy) discoverFeedURLs(ctx context.Context, stationURL string) []string {
	var candidates []string
	seen := map[string]bool{}
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			candidates = append(candidates, u)
		}
	}

	body, err := fetch.GetString(ctx, s.pageClient, stationURL)
	if err == nil {
		if doc, err := htmlutil.DocumentFromString(body); err == nil {
			for _, a := range htmlutil.GetAnchors(doc.Find("a[href]")) {
				if calendarLikeHref(a.Href) {
					add(resolveURL(stationURL, a.Href))
				}
			}
		}
	} else {
		slog.DebugContext(ctx, "page fetch for feed discovery failed", "url", stationURL, "err", err)
	}

	if base, err := url.Parse(stationURL); err == nil {
		root := base.Scheme + "://" + base.Host
		for _, p := range feedPaths {
			add(root + p)
		}
	}
	return candidates
}
