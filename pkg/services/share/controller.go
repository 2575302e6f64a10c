package share

import (
	"context"
	"errors"
	"fmt"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/grid-tools/fuelmix/pkg/services/estimate"
	"github.com/grid-tools/fuelmix/pkg/services/fueltech"
	"github.com/grid-tools/fuelmix/pkg/services/rolling"
	"github.com/rs/zerolog"
)

// Controller runs the full share pipeline for one network: fetch raw
// generation records, aggregate into grouped series, compute trailing
// rolling shares over the complete months, and append the estimated point
// for the in-progress month. Any stage error aborts the run before output
// is produced.
type Controller struct {
	profile    domain.NetworkProfile
	monthly    MonthlyProvider
	daily      DailyProvider
	classifier *fueltech.Classifier
	engine     *rolling.Engine
	estimator  *estimate.Estimator
}

func NewController(
	profile domain.NetworkProfile,
	monthly MonthlyProvider,
	daily DailyProvider,
	classifier *fueltech.Classifier,
	engine *rolling.Engine,
) *Controller {
	return &Controller{
		profile:    profile,
		monthly:    monthly,
		daily:      daily,
		classifier: classifier,
		engine:     engine,
		estimator:  estimate.NewEstimator(engine),
	}
}

func (c *Controller) Profile() domain.NetworkProfile { return c.profile }

// ComputeShares produces the month-indexed share series as of the given
// reference date: one point per month with a full trailing window over
// the complete historical months, plus one estimated point for the month
// containing asOf. When asOf is the first day of a month no day of it has
// completed, so the estimated point is skipped and the historical series
// returned as-is.
func (c *Controller) ComputeShares(ctx context.Context, asOf domain.Date) (domain.ShareSeries, error) {
	logger := zerolog.Ctx(ctx)

	records, err := c.monthly.MonthlyGeneration(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch monthly generation: %w", err)
	}

	monthly, err := c.classifier.MonthlySeries(records)
	if err != nil {
		return nil, fmt.Errorf("aggregate monthly generation: %w", err)
	}
	monthly = completeMonths(monthly, asOf.Month())

	logger.Info().
		Str("network", c.profile.Code).
		Int("months", len(monthly)).
		Msg("aggregated monthly series")

	series, err := c.engine.Compute(monthly)
	if err != nil {
		return nil, fmt.Errorf("compute rolling shares: %w", err)
	}

	point, err := c.estimateCurrentMonth(ctx, monthly, asOf)
	if err != nil {
		if errors.Is(err, estimate.ErrNoElapsedDays) {
			logger.Info().
				Str("network", c.profile.Code).
				Msg("no elapsed days in current month, skipping estimate")
			return series, nil
		}
		return nil, err
	}

	logger.Info().
		Str("network", c.profile.Code).
		Str("month", point.Month.String()).
		Float64("fossil_pct", point.FossilPct).
		Float64("renewable_pct", point.RenewablePct).
		Msg("estimated current month")

	return append(series, point), nil
}

func (c *Controller) estimateCurrentMonth(
	ctx context.Context,
	monthly domain.MonthlySeries,
	asOf domain.Date,
) (domain.SharePoint, error) {
	cutoff := asOf.AddDays(-1)
	years := []int{cutoff.Year() - 1, cutoff.Year()}

	var records []domain.GenerationRecord
	for _, year := range years {
		yearly, err := c.daily.DailyGeneration(ctx, year)
		if err != nil {
			return domain.SharePoint{}, fmt.Errorf("fetch daily generation for %d: %w", year, err)
		}
		records = append(records, yearly...)
	}

	daily, err := c.classifier.DailySeries(records)
	if err != nil {
		return domain.SharePoint{}, fmt.Errorf("aggregate daily generation: %w", err)
	}

	point, err := c.estimator.Estimate(monthly, daily, asOf)
	if err != nil {
		if errors.Is(err, estimate.ErrNoElapsedDays) {
			return domain.SharePoint{}, err
		}
		return domain.SharePoint{}, fmt.Errorf("estimate current month: %w", err)
	}
	return point, nil
}

// completeMonths drops entries at or after the reference month: a feed may
// already carry a partial total for the in-progress month, which must not
// enter the historical rolling window.
func completeMonths(series domain.MonthlySeries, current domain.Month) domain.MonthlySeries {
	out := make(domain.MonthlySeries, 0, len(series))
	for _, entry := range series {
		if entry.Month.Before(current) {
			out = append(out, entry)
		}
	}
	return out
}
