package estimate

import (
	"errors"
	"fmt"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/grid-tools/fuelmix/pkg/services/rolling"
)

// ErrNoElapsedDays reports a reference date on the first day of a month:
// no complete day of the current month exists yet, so there is nothing to
// estimate from.
var ErrNoElapsedDays = errors.New("no complete day has elapsed in the reference month")

// Estimator synthesizes the trailing-window share point for the current,
// incomplete calendar month. The reference date is an explicit input so
// runs are deterministic and testable; the estimator never consults the
// wall clock.
//
// The final window slot is built from daily-granularity data only:
// month-to-date actuals through yesterday, plus the remainder of the
// month projected from the prior year's daily average over the matching
// partial-month window. The resulting window always carries exactly
// window-months' worth of totals.
type Estimator struct {
	engine *rolling.Engine
}

func NewEstimator(engine *rolling.Engine) *Estimator {
	return &Estimator{engine: engine}
}

// Estimate computes the share point for the month containing refDate.
//
// It takes the window-1 most recent complete months before the reference
// month from monthly, and completes the window with a slot derived from
// daily: the current month-to-date total (day 1 through yesterday) plus
// the prior-year same-window daily average scaled over the remaining days
// of the month. Today's partial day is always excluded.
//
// Missing daily coverage for either window fails with
// InsufficientDailyDataError naming the uncovered range; missing monthly
// coverage fails outright. Zero is never silently substituted.
func (e *Estimator) Estimate(
	monthly domain.MonthlySeries,
	daily domain.DailySeries,
	refDate domain.Date,
) (domain.SharePoint, error) {
	if err := monthly.Validate(); err != nil {
		return domain.SharePoint{}, err
	}

	current := refDate.Month()
	cutoff := refDate.AddDays(-1)
	if cutoff.Month() != current {
		return domain.SharePoint{}, ErrNoElapsedDays
	}

	trailing, err := completeMonthTotals(monthly, current, e.engine.Window()-1)
	if err != nil {
		return domain.SharePoint{}, err
	}

	slot, err := estimateCurrentSlot(daily, current, cutoff)
	if err != nil {
		return domain.SharePoint{}, err
	}
	trailing = trailing.Add(slot)

	return domain.SharePoint{
		Month:        current,
		FossilPct:    e.engine.SharePct(trailing.Fossil, trailing.Total()),
		RenewablePct: e.engine.SharePct(trailing.Renewable, trailing.Total()),
		Estimate:     true,
		Note:         fmt.Sprintf("estimate based on 12 months to %s", cutoff),
	}, nil
}

// completeMonthTotals sums the n complete months immediately before the
// current month, verifying each one is present in the series.
func completeMonthTotals(monthly domain.MonthlySeries, current domain.Month, n int) (domain.GroupTotals, error) {
	byMonth := make(map[domain.Month]domain.GroupTotals, len(monthly))
	for _, entry := range monthly {
		byMonth[entry.Month] = entry.GroupTotals
	}

	var sum domain.GroupTotals
	first := current.AddMonths(-n)
	for m := first; m.Before(current); m = m.Next() {
		totals, ok := byMonth[m]
		if !ok {
			return domain.GroupTotals{}, fmt.Errorf(
				"monthly series does not cover %s..%s: missing %s",
				first, current.AddMonths(-1), m)
		}
		sum = sum.Add(totals)
	}
	return sum, nil
}

// estimateCurrentSlot builds a full-month-equivalent total for the
// reference month: month-to-date actuals plus the remaining days projected
// from the prior year's daily average over the matching window.
func estimateCurrentSlot(daily domain.DailySeries, current domain.Month, cutoff domain.Date) (domain.GroupTotals, error) {
	mtd, err := daily.SumRange(current.FirstDay(), cutoff)
	if err != nil {
		return domain.GroupTotals{}, err
	}

	priorMonth := current.AddMonths(-12)
	priorStart := priorMonth.FirstDay()
	priorDays := cutoff.Day()
	if priorDays > priorMonth.Days() {
		priorDays = priorMonth.Days()
	}
	priorCutoff := priorStart.AddDays(priorDays - 1)

	prior, err := daily.SumRange(priorStart, priorCutoff)
	if err != nil {
		return domain.GroupTotals{}, err
	}

	remaining := current.Days() - cutoff.Day()
	if remaining == 0 {
		return mtd, nil
	}
	perDay := prior.Scale(1 / float64(priorDays))
	return mtd.Add(perDay.Scale(float64(remaining))), nil
}
