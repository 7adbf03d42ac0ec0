package extractor

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/catsplus/radiograb-sub001/lib/fetch"
	"github.com/catsplus/radiograb-sub001/lib/htmlutil"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
	"github.com/catsplus/radiograb-sub001/lib/textutil"
)

// tableStrategy scans HTML tables for a weekday-grid schedule, the
// most common layout on community station sites.
type tableStrategy struct {
	client *resty.Client
}

func newTableStrategy() *tableStrategy {
	return &tableStrategy{client: fetch.NewClient(fetch.PageTimeout)}
}

func (s *tableStrategy) Name() string { return "html_table" }

func (s *tableStrategy) Extract(ctx context.Context, stationURL string) ([]schedule.Show, error) {
	body, err := fetch.GetString(ctx, s.client, stationURL)
	if err != nil {
		return nil, err
	}
	doc, err := htmlutil.DocumentFromString(body)
	if err != nil {
		return nil, err
	}
	return parseScheduleTables(doc, stationURL, gridOptions{
		timeColumnDefault: 0,
		slotMinutes:       60,
		fillers:           tableFillers,
		djLabel:           "DJ",
		source:            s.Name(),
	}), nil
}

// gridOptions parameterize the weekday-grid walk so the spreadsheet
// strategy can reuse it with its own defaults.
type gridOptions struct {
	timeColumnDefault int
	slotMinutes       int
	fillers           map[string]bool
	djLabel           string
	source            string
}

// parseScheduleTables walks every table, keeps the first one that
// both looks schedule-like and yields candidates.
func parseScheduleTables(doc *goquery.Document, stationURL string, opts gridOptions) []schedule.Show {
	station := schedule.StationLabel(stationURL)

	var shows []schedule.Show
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if !tableLooksLikeSchedule(table) {
			return true
		}
		shows = parseGrid(table, station, opts)
		// first qualifying table that yields anything wins
		return len(shows) == 0
	})
	return shows
}

func tableLooksLikeSchedule(table *goquery.Selection) bool {
	text := table.Text()
	if textutil.ContainsAny(text, tableKeywords) {
		return true
	}
	_, ok := schedule.ParseTime12(text)
	return ok
}

type gridHeader struct {
	// dayColumns maps column index -> weekday
	dayColumns map[int]schedule.Weekday
	timeColumn int
	headerRow  int
}

// findGridHeader searches the first 5 rows for the one naming
// weekdays, and maps each weekday to its column.
func findGridHeader(rows *goquery.Selection, opts gridOptions) (gridHeader, bool) {
	header := gridHeader{
		dayColumns: map[int]schedule.Weekday{},
		timeColumn: opts.timeColumnDefault,
	}

	found := false
	rows.EachWithBreak(func(rowIdx int, row *goquery.Selection) bool {
		if rowIdx >= 5 {
			return false
		}

		dayColumns := map[int]schedule.Weekday{}
		timeColumn := -1
		row.Find("th, td").Each(func(colIdx int, cell *goquery.Selection) {
			label := textutil.CollapseWhitespace(cell.Text())
			if d, ok := schedule.ParseWeekday(label); ok {
				dayColumns[colIdx] = d
				return
			}
			if strings.Contains(strings.ToLower(label), "time") {
				timeColumn = colIdx
			}
		})

		if len(dayColumns) == 0 {
			return true
		}

		header.dayColumns = dayColumns
		header.headerRow = rowIdx
		if timeColumn >= 0 {
			header.timeColumn = timeColumn
		}
		found = true
		return false
	})

	return header, found
}

func parseGrid(table *goquery.Selection, station string, opts gridOptions) []schedule.Show {
	rows := table.Find("tr")
	header, ok := findGridHeader(rows, opts)
	if !ok {
		return nil
	}

	var shows []schedule.Show
	rows.Each(func(rowIdx int, row *goquery.Selection) {
		if rowIdx <= header.headerRow {
			return
		}

		cells := row.Find("th, td")
		timeCell := textutil.CollapseWhitespace(cells.Eq(header.timeColumn).Text())
		start, ok := schedule.ParseTime12(timeCell)
		if !ok {
			return
		}
		end := start.AddMinutes(opts.slotMinutes)

		cells.Each(func(colIdx int, cell *goquery.Selection) {
			day, isDay := header.dayColumns[colIdx]
			if !isDay {
				return
			}
			name := textutil.CollapseWhitespace(cell.Text())
			if name == "" || opts.fillers[strings.ToLower(name)] {
				return
			}

			e := end
			shows = append(shows, schedule.Show{
				Name:            schedule.CleanName(name),
				Start:           start,
				End:             &e,
				Days:            []schedule.Weekday{day},
				Station:         station,
				Host:            opts.djLabel,
				Genre:           schedule.ClassifyGenre(name),
				DurationMinutes: opts.slotMinutes,
				SourceStrategy:  opts.source,
			})
		})
	})
	return shows
}
