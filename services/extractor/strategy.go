// Package extractor discovers a station's on-air schedule from its
// website. Strategies targeting different publishing formats run in
// fixed priority order; the first one producing valid shows wins.
package extractor

import (
	"context"

	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

// Strategy is one self-contained extraction algorithm. Extract
// returns raw, unfiltered candidates; transport and parse failures
// come back as errors and never abort the pipeline.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, stationURL string) ([]schedule.Show, error)
}

// Attempt records one strategy execution for diagnostics.
type Attempt struct {
	Strategy string
	// Stage is "ok", "empty" or "error"
	Stage string
	Err   error
}

// Result is the top-level pipeline output.
type Result struct {
	Success      bool
	Shows        []schedule.Show
	StationURL   string
	StrategyUsed string
	// Suggestions is only populated when no strategy found shows.
	Suggestions []string
	Error       string
	Attempts    []Attempt
	FilterStats schedule.FilterStats
}

// ResultPayload is the JSON envelope callers ship over the wire,
// with shows flattened into per-day records.
type ResultPayload struct {
	Success      bool       `json:"success"`
	Shows        []FlatShow `json:"shows"`
	StationURL   string     `json:"station_url"`
	TotalShows   int        `json:"total_shows"`
	StrategyUsed string     `json:"parsing_strategy,omitempty"`
	Suggestions  []string   `json:"suggestions,omitempty"`
	Error        string     `json:"error,omitempty"`
}

func (r Result) Payload() ResultPayload {
	return ResultPayload{
		Success:      r.Success,
		Shows:        Flatten(r.Shows),
		StationURL:   r.StationURL,
		TotalShows:   len(r.Shows),
		StrategyUsed: r.StrategyUsed,
		Suggestions:  r.Suggestions,
		Error:        r.Error,
	}
}

// FlatShow is the wire form: one record per (show, day) pair.
type FlatShow struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Day       string `json:"day"`
	Station   string `json:"station"`
	DJ        string `json:"dj"`
	Genre     string `json:"genre"`
}

// Flatten expands recurring shows into per-day records, ordered by
// weekday with unknown last.
func Flatten(shows []schedule.Show) []FlatShow {
	var out []FlatShow
	for _, s := range shows {
		for _, d := range schedule.NormalizeDays(s.Days) {
			out = append(out, FlatShow{
				Name:      s.Name,
				StartTime: s.Start.String(),
				EndTime:   s.EndOrDefault().String(),
				Day:       string(d),
				Station:   s.Station,
				DJ:        s.Host,
				Genre:     s.Genre,
			})
		}
	}
	return out
}
