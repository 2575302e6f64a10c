package estimate

import (
	"testing"
	"time"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/grid-tools/fuelmix/pkg/services/rolling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monthlyRange builds consecutive complete months from start, each with the
// given totals.
func monthlyRange(start domain.Month, n int, totals domain.GroupTotals) domain.MonthlySeries {
	series := make(domain.MonthlySeries, 0, n)
	for i := 0; i < n; i++ {
		series = append(series, domain.MonthlyEntry{
			Month:       start.AddMonths(i),
			GroupTotals: totals,
		})
	}
	return series
}

// dailyRange builds a daily entry for every day in [from, to], each with the
// given totals.
func dailyRange(from, to domain.Date, totals domain.GroupTotals) domain.DailySeries {
	series := domain.DailySeries{}
	for d := from; !d.After(to); d = d.AddDays(1) {
		series = append(series, domain.DailyEntry{Date: d, GroupTotals: totals})
	}
	return series
}

func TestEstimator_Estimate(t *testing.T) {
	estimator := NewEstimator(rolling.NewEngine(rolling.DefaultSettings()))
	refDate := domain.NewDate(2025, time.August, 15)

	// Eleven complete months, 2024-09 through 2025-07.
	monthly := monthlyRange(domain.Month{Year: 2024, Month: time.September}, 11,
		domain.GroupTotals{Fossil: 60, Renewable: 40})

	t.Run("success - blends month-to-date with prior-year run rate", func(t *testing.T) {
		// Daily coverage: exactly the current month-to-date window plus the
		// matching prior-year window, nothing else.
		daily := append(
			dailyRange(domain.NewDate(2025, time.August, 1), domain.NewDate(2025, time.August, 14),
				domain.GroupTotals{Fossil: 2, Renewable: 2}),
			dailyRange(domain.NewDate(2024, time.August, 1), domain.NewDate(2024, time.August, 14),
				domain.GroupTotals{Fossil: 3, Renewable: 1})...,
		)

		point, err := estimator.Estimate(monthly, daily, refDate)
		require.NoError(t, err)

		assert.Equal(t, domain.Month{Year: 2025, Month: time.August}, point.Month)
		assert.True(t, point.Estimate)
		assert.Equal(t, "estimate based on 12 months to 2025-08-14", point.Note)

		// Window: 11 complete months of 60/40 plus an estimated slot of
		// MTD (14d of 2/2) + 17 remaining days at the prior-year daily
		// average (3/1). Fossil 60*11+28+51=739, renewable 40*11+28+17=485,
		// total 1224.
		assert.InDelta(t, 60.38, point.FossilPct, 0.001)
		assert.InDelta(t, 39.62, point.RenewablePct, 0.001)
	})

	t.Run("success - cutoff on the last day of the month", func(t *testing.T) {
		// Reference on Aug 31 leaves a single day to project.
		ref := domain.NewDate(2025, time.August, 31)
		daily := append(
			dailyRange(domain.NewDate(2025, time.August, 1), domain.NewDate(2025, time.August, 30),
				domain.GroupTotals{Fossil: 2, Renewable: 2}),
			dailyRange(domain.NewDate(2024, time.August, 1), domain.NewDate(2024, time.August, 30),
				domain.GroupTotals{Fossil: 3, Renewable: 1})...,
		)

		point, err := estimator.Estimate(monthly, daily, ref)
		require.NoError(t, err)
		assert.Equal(t, "estimate based on 12 months to 2025-08-30", point.Note)
	})

	t.Run("error - reference on the first of the month", func(t *testing.T) {
		_, err := estimator.Estimate(monthly, domain.DailySeries{}, domain.NewDate(2025, time.August, 1))
		require.ErrorIs(t, err, ErrNoElapsedDays)
	})

	t.Run("error - missing current-month daily coverage is named", func(t *testing.T) {
		daily := dailyRange(domain.NewDate(2025, time.August, 1), domain.NewDate(2025, time.August, 10),
			domain.GroupTotals{Fossil: 2})

		_, err := estimator.Estimate(monthly, daily, refDate)
		var missingErr *domain.InsufficientDailyDataError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "2025-08-11..2025-08-14", missingErr.MissingRange())
	})

	t.Run("error - missing prior-year daily coverage is named", func(t *testing.T) {
		daily := dailyRange(domain.NewDate(2025, time.August, 1), domain.NewDate(2025, time.August, 14),
			domain.GroupTotals{Fossil: 2})

		_, err := estimator.Estimate(monthly, daily, refDate)
		var missingErr *domain.InsufficientDailyDataError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "2024-08-01..2024-08-14", missingErr.MissingRange())
	})

	t.Run("error - monthly window short a month", func(t *testing.T) {
		short := monthlyRange(domain.Month{Year: 2024, Month: time.October}, 10,
			domain.GroupTotals{Fossil: 1})
		daily := append(
			dailyRange(domain.NewDate(2025, time.August, 1), domain.NewDate(2025, time.August, 14),
				domain.GroupTotals{Fossil: 2}),
			dailyRange(domain.NewDate(2024, time.August, 1), domain.NewDate(2024, time.August, 14),
				domain.GroupTotals{Fossil: 3})...,
		)

		_, err := estimator.Estimate(short, daily, refDate)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing 2024-09")
	})

	t.Run("error - invalid monthly series", func(t *testing.T) {
		broken := monthlyRange(domain.Month{Year: 2024, Month: time.September}, 11,
			domain.GroupTotals{Fossil: 1})
		broken[3].Month = broken[2].Month

		_, err := estimator.Estimate(broken, domain.DailySeries{}, refDate)
		var dupErr *domain.DuplicatePeriodError
		require.ErrorAs(t, err, &dupErr)
	})
}

func TestEstimator_Estimate_LeapFebruary(t *testing.T) {
	estimator := NewEstimator(rolling.NewEngine(rolling.DefaultSettings()))

	// Current month is a 28-day February; the prior-year window falls in a
	// 29-day leap February. Only the matching day-count is required.
	refDate := domain.NewDate(2025, time.February, 15)
	monthly := monthlyRange(domain.Month{Year: 2024, Month: time.March}, 11,
		domain.GroupTotals{Fossil: 50, Renewable: 50})
	daily := append(
		dailyRange(domain.NewDate(2025, time.February, 1), domain.NewDate(2025, time.February, 14),
			domain.GroupTotals{Fossil: 1, Renewable: 1}),
		dailyRange(domain.NewDate(2024, time.February, 1), domain.NewDate(2024, time.February, 14),
			domain.GroupTotals{Fossil: 1, Renewable: 1})...,
	)

	point, err := estimator.Estimate(monthly, daily, refDate)
	require.NoError(t, err)
	assert.Equal(t, domain.Month{Year: 2025, Month: time.February}, point.Month)
	assert.InDelta(t, 50.0, point.FossilPct, 0.001)
}
