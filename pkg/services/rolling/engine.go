package rolling

import (
	"math"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
)

// Settings contains configurable parameters for the rolling window engine.
type Settings struct {
	// Window is the trailing window length in months (default: 12).
	Window int
	// Precision is the number of decimal places percentages are rounded
	// to (default: 2).
	Precision int
}

func DefaultSettings() Settings {
	return Settings{
		Window:    12,
		Precision: 2,
	}
}

// Engine computes trailing-window percentage shares over a monthly series.
// It is stateless apart from its settings; Compute is a pure function and
// safe to call from any goroutine.
type Engine struct {
	settings Settings
}

func NewEngine(settings Settings) *Engine {
	if settings.Window <= 0 {
		settings.Window = DefaultSettings().Window
	}
	if settings.Precision < 0 {
		settings.Precision = DefaultSettings().Precision
	}
	return &Engine{settings: settings}
}

// Compute produces one share point per month once a full trailing window
// is available: for a valid series of length N it returns exactly
// N-window+1 points. The share denominator is total generation across all
// groups, so fossil and renewable percentages need not sum to 100. A
// window with zero total generation yields NaN shares for that month
// rather than a division failure.
//
// The input must be chronologically ordered with no gaps; a repeated
// month fails with DuplicatePeriodError and a skipped month with
// SeriesGapError.
func (e *Engine) Compute(series domain.MonthlySeries) (domain.ShareSeries, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	window := e.settings.Window
	if len(series) < window {
		return domain.ShareSeries{}, nil
	}

	out := make(domain.ShareSeries, 0, len(series)-window+1)
	for i := window - 1; i < len(series); i++ {
		var trailing domain.GroupTotals
		for _, entry := range series[i-window+1 : i+1] {
			trailing = trailing.Add(entry.GroupTotals)
		}
		out = append(out, domain.SharePoint{
			Month:        series[i].Month,
			FossilPct:    e.SharePct(trailing.Fossil, trailing.Total()),
			RenewablePct: e.SharePct(trailing.Renewable, trailing.Total()),
		})
	}
	return out, nil
}

// SharePct converts a group total into a percentage of the denominator,
// rounded to the configured precision. A zero denominator yields NaN, the
// defined sentinel for a window with no recorded generation.
func (e *Engine) SharePct(value, total float64) float64 {
	if total == 0 {
		return math.NaN()
	}
	return round(100*value/total, e.settings.Precision)
}

// Window returns the configured trailing window length in months.
func (e *Engine) Window() int { return e.settings.Window }

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
