package extractor

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/catsplus/radiograb-sub001/lib/schedule"
)

var tracer = otel.Tracer("services/extractor")

// Options configures the pipeline. RenderedPage, when provided, runs
// before every built-in strategy; it is an external collaborator
// driving a real browser and only its contract matters here.
type Options struct {
	RenderedPage Strategy
}

type Service struct {
	strategies []Strategy
}

// NewService builds the pipeline with the fixed strategy order:
// rendered page (optional), structured API, spreadsheet, HTML table,
// DOM widgets, calendar feed, free text last.
func NewService(opts Options) Service {
	var strategies []Strategy
	if opts.RenderedPage != nil {
		strategies = append(strategies, opts.RenderedPage)
	}
	strategies = append(strategies,
		newAPIStrategy(),
		newSheetStrategy(),
		newTableStrategy(),
		newDOMStrategy(),
		newCalendarStrategy(),
		newFreetextStrategy(),
	)
	return Service{strategies: strategies}
}

// newServiceWith injects an explicit strategy list for tests.
func newServiceWith(strategies ...Strategy) Service {
	return Service{strategies: strategies}
}

// Extract runs strategies in order until one produces valid shows.
// Strategy failures are swallowed: a strategy that errors is treated
// exactly like one that found nothing. The context bounds the whole
// pipeline, so a caller deadline is honored between strategies.
func (s Service) Extract(ctx context.Context, stationURL string) Result {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()
	span.SetAttributes(attribute.String("station_url", stationURL))

	result := Result{StationURL: stationURL}

	for _, strategy := range s.strategies {
		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "extraction abandoned", "station", stationURL, "err", err)
			result.Attempts = append(result.Attempts, Attempt{
				Strategy: strategy.Name(), Stage: "error", Err: err,
			})
			break
		}

		candidates, err := strategy.Extract(ctx, stationURL)
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "strategy failed",
				"strategy", strategy.Name(),
				"station", stationURL,
				"err", err,
			)
			result.Attempts = append(result.Attempts, Attempt{
				Strategy: strategy.Name(), Stage: "error", Err: err,
			})
			continue
		}

		shows, stats := schedule.Filter(candidates)
		if len(shows) == 0 {
			result.Attempts = append(result.Attempts, Attempt{
				Strategy: strategy.Name(), Stage: "empty",
			})
			continue
		}

		slog.InfoContext(ctx, "extraction succeeded",
			"strategy", strategy.Name(),
			"station", stationURL,
			"shows", len(shows),
		)
		result.Attempts = append(result.Attempts, Attempt{
			Strategy: strategy.Name(), Stage: "ok",
		})
		result.Success = true
		result.Shows = shows
		result.StrategyUsed = strategy.Name()
		result.FilterStats = stats
		return result
	}

	span.SetStatus(codes.Error, "no strategy found a schedule")
	result.Suggestions = append([]string{}, exhaustionSuggestions...)
	result.Error = "no structured schedule found at " + stationURL
	return result
}
