package extractor

import (
	"context"
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/catsplus/radiograb-sub001/lib/fetch"
	"github.com/catsplus/radiograb-sub001/lib/htmlutil"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
	"github.com/catsplus/radiograb-sub001/lib/textutil"
)

// domStrategy matches calendar-widget markup via an ordered CSS
// selector list, and independently reads JSON-LD Event blocks.
type domStrategy struct {
	client *resty.Client
}

func newDOMStrategy() *domStrategy {
	return &domStrategy{client: fetch.NewClient(fetch.PageTimeout)}
}

func (s *domStrategy) Name() string { return "dom_events" }

func (s *domStrategy) Extract(ctx context.Context, stationURL string) ([]schedule.Show, error) {
	body, err := fetch.GetString(ctx, s.client, stationURL)
	if err != nil {
		return nil, err
	}
	doc, err := htmlutil.DocumentFromString(body)
	if err != nil {
		return nil, err
	}

	station := schedule.StationLabel(stationURL)
	shows := s.parseWidgets(doc, station)
	shows = append(shows, s.parseJSONLD(doc, station)...)
	return shows, nil
}

// parseWidgets walks the selector list in order and keeps the first
// pattern that matches anything.
func (s *domStrategy) parseWidgets(doc *goquery.Document, station string) []schedule.Show {
	for _, selector := range domEventSelectors {
		matches := doc.Find(selector)
		if matches.Length() == 0 {
			continue
		}

		var shows []schedule.Show
		matches.Each(func(_ int, el *goquery.Selection) {
			show, ok := s.parseWidget(el, station)
			if ok {
				shows = append(shows, show)
			}
		})
		if len(shows) > 0 {
			return shows
		}
	}
	return nil
}

func (s *domStrategy) parseWidget(el *goquery.Selection, station string) (schedule.Show, bool) {
	name := textutil.CollapseWhitespace(el.Find(domTitleSelectors).First().Text())
	if !schedule.ValidName(name) {
		return schedule.Show{}, false
	}

	timeText := textutil.CollapseWhitespace(el.Find(domTimeSelectors).First().Text())
	start, ok := schedule.ParseTime12(timeText)
	if !ok {
		// a time may sit anywhere in the element text
		start, ok = schedule.ParseTime12(el.Text())
	}
	if !ok {
		return schedule.Show{}, false
	}

	day := schedule.Unknown
	needsReview := true
	if d, ok := schedule.FindWeekday(el.Text()); ok {
		day = d
		needsReview = false
	}

	end := start.AddMinutes(schedule.DefaultDurationMinutes)
	return schedule.Show{
		Name:            schedule.CleanName(name),
		Start:           start,
		End:             &end,
		Days:            []schedule.Weekday{day},
		Station:         station,
		Genre:           schedule.ClassifyGenre(el.Text()),
		Host:            schedule.ExtractHost(el.Text()),
		DurationMinutes: schedule.DefaultDurationMinutes,
		SourceStrategy:  s.Name(),
		NeedsReview:     needsReview,
	}, true
}

type ldEvent struct {
	Type      string `json:"@type"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// parseJSONLD reads script[type=application/ld+json] blocks, keeping
// @type Event entries whether they come alone, in an array or inside
// an @graph.
func (s *domStrategy) parseJSONLD(doc *goquery.Document, station string) []schedule.Show {
	var shows []schedule.Show
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		for _, event := range decodeLDEvents(script.Text()) {
			show, ok := s.parseLDEvent(event, station)
			if ok {
				shows = append(shows, show)
			}
		}
	})
	return shows
}

func decodeLDEvents(raw string) []ldEvent {
	var single ldEvent
	if err := json.Unmarshal([]byte(raw), &single); err == nil && single.Type != "" {
		return []ldEvent{single}
	}
	var list []ldEvent
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	var graph struct {
		Graph []ldEvent `json:"@graph"`
	}
	if err := json.Unmarshal([]byte(raw), &graph); err == nil {
		return graph.Graph
	}
	return nil
}

func (s *domStrategy) parseLDEvent(event ldEvent, station string) (schedule.Show, bool) {
	if event.Type != "Event" || !schedule.ValidName(event.Name) {
		return schedule.Show{}, false
	}
	start, day, ok := schedule.ParseISO(event.StartDate)
	if !ok {
		return schedule.Show{}, false
	}

	show := schedule.Show{
		Name:           schedule.CleanName(event.Name),
		Start:          start,
		Days:           []schedule.Weekday{day},
		Station:        station,
		Genre:          schedule.ClassifyGenre(event.Name),
		SourceStrategy: s.Name(),
	}

	if end, _, ok := schedule.ParseISO(event.EndDate); ok {
		show.End = &end
		show.DurationMinutes = start.MinutesUntil(end)
	} else {
		end := start.AddMinutes(schedule.DefaultDurationMinutes)
		show.End = &end
		show.DurationMinutes = schedule.DefaultDurationMinutes
	}
	return show, true
}
