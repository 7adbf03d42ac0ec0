package extractor

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/catsplus/radiograb-sub001/lib/fetch"
	"github.com/catsplus/radiograb-sub001/lib/htmlutil"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

// sheetStrategy handles schedules published as embedded Google
// Sheets. A published sheet renders as a plain HTML table, so the
// grid walk is shared with the table strategy, just with
// spreadsheet-specific defaults.
type sheetStrategy struct {
	client *resty.Client
}

func newSheetStrategy() *sheetStrategy {
	return &sheetStrategy{client: fetch.NewClient(fetch.PageTimeout)}
}

func (s *sheetStrategy) Name() string { return "spreadsheet" }

func isSheetURL(raw string) bool {
	raw = strings.ToLower(raw)
	return strings.Contains(raw, "docs.google.com/spreadsheets") ||
		strings.Contains(raw, "/pubhtml") ||
		strings.Contains(raw, "output=html")
}

func (s *sheetStrategy) Extract(ctx context.Context, stationURL string) ([]schedule.Show, error) {
	if isSheetURL(stationURL) {
		return s.parseSheet(ctx, stationURL, stationURL)
	}

	// not a sheet itself: look for an embedded spreadsheet iframe
	body, err := fetch.GetString(ctx, s.client, stationURL)
	if err != nil {
		return nil, err
	}
	doc, err := htmlutil.DocumentFromString(body)
	if err != nil {
		return nil, err
	}

	var sheetURL string
	doc.Find("iframe").EachWithBreak(func(_ int, iframe *goquery.Selection) bool {
		src, _ := iframe.Attr("src")
		if isSheetURL(src) {
			sheetURL = src
			return false
		}
		return true
	})
	if sheetURL == "" {
		return nil, nil
	}

	resolved := resolveURL(stationURL, sheetURL)
	return s.parseSheet(ctx, resolved, stationURL)
}

func (s *sheetStrategy) parseSheet(ctx context.Context, sheetURL, stationURL string) ([]schedule.Show, error) {
	body, err := fetch.GetString(ctx, s.client, sheetURL)
	if err != nil {
		return nil, err
	}
	doc, err := htmlutil.DocumentFromString(body)
	if err != nil {
		return nil, err
	}

	station := schedule.StationLabel(stationURL)
	return parseScheduleTables(doc, stationURL, gridOptions{
		// published sheets put a row-number gutter in column 0
		timeColumnDefault: 1,
		slotMinutes:       30,
		fillers:           sheetFillers,
		djLabel:           station + " DJ",
		source:            s.Name(),
	}), nil
}

// resolveURL resolves href against base, falling back to href as-is.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
