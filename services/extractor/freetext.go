package extractor

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/catsplus/radiograb-sub001/lib/fetch"
	"github.com/catsplus/radiograb-sub001/lib/htmlutil"
	"github.com/catsplus/radiograb-sub001/lib/schedule"
	"github.com/catsplus/radiograb-sub001/lib/textutil"
)

// freetextStrategy is the last resort: scan visible page text for
// "time - short phrase" pairs. It runs only after every structured
// strategy has failed, so it deliberately accepts more noise.
type freetextStrategy struct {
	client *resty.Client
}

func newFreetextStrategy() *freetextStrategy {
	return &freetextStrategy{client: fetch.NewClient(fetch.PageTimeout)}
}

func (s *freetextStrategy) Name() string { return "freetext" }

var freetextTimeRegex = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*[ap]\.?m\.?`)

var namePunctRegex = regexp.MustCompile(`[^\pL\pN '&-]`)

func (s *freetextStrategy) Extract(ctx context.Context, stationURL string) ([]schedule.Show, error) {
	body, err := fetch.GetString(ctx, s.client, stationURL)
	if err != nil {
		return nil, err
	}
	text := htmlutil.StripTags(body)
	station := schedule.StationLabel(stationURL)

	var shows []schedule.Show
	locs := freetextTimeRegex.FindAllStringIndex(text, -1)
	for i, loc := range locs {
		start, ok := schedule.ParseTime12(text[loc[0]:loc[1]])
		if !ok {
			continue
		}

		// the phrase is what trails the time token, up to the
		// next time token, bounded to 10-80 characters
		phrase := text[loc[1]:]
		if i+1 < len(locs) {
			phrase = text[loc[1]:locs[i+1][0]]
		}
		phrase = strings.TrimLeft(phrase, " \t-–—:")
		phrase = textutil.Truncate(phrase, 80)
		if len([]rune(phrase)) < 10 {
			continue
		}

		name := namePunctRegex.ReplaceAllString(phrase, " ")
		name = textutil.CollapseWhitespace(name)
		name = textutil.Truncate(name, 50)
		if len([]rune(name)) < 4 {
			continue
		}

		shows = append(shows, schedule.Show{
			Name:           schedule.CleanName(name),
			Start:          start,
			Days:           []schedule.Weekday{schedule.Unknown},
			Station:        station,
			Genre:          schedule.ClassifyGenre(name),
			SourceStrategy: s.Name(),
			NeedsReview:    true,
		})
	}
	return shows, nil
}
