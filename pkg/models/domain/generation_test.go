package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyEntry(year int, month time.Month, totals GroupTotals) MonthlyEntry {
	return MonthlyEntry{Month: Month{Year: year, Month: month}, GroupTotals: totals}
}

func TestMonthlySeries_Validate(t *testing.T) {
	t.Run("success - ordered gapless series", func(t *testing.T) {
		series := MonthlySeries{
			monthlyEntry(2024, time.November, GroupTotals{Fossil: 1}),
			monthlyEntry(2024, time.December, GroupTotals{Fossil: 2}),
			monthlyEntry(2025, time.January, GroupTotals{Fossil: 3}),
		}
		require.NoError(t, series.Validate())
	})

	t.Run("success - empty and single-entry series", func(t *testing.T) {
		require.NoError(t, MonthlySeries{}.Validate())
		require.NoError(t, MonthlySeries{monthlyEntry(2025, time.May, GroupTotals{})}.Validate())
	})

	t.Run("error - duplicate month", func(t *testing.T) {
		series := MonthlySeries{
			monthlyEntry(2025, time.May, GroupTotals{Fossil: 1}),
			monthlyEntry(2025, time.May, GroupTotals{Fossil: 2}),
		}
		var dupErr *DuplicatePeriodError
		require.ErrorAs(t, series.Validate(), &dupErr)
		assert.Equal(t, "2025-05", dupErr.Period)
	})

	t.Run("error - gap between months", func(t *testing.T) {
		series := MonthlySeries{
			monthlyEntry(2025, time.May, GroupTotals{Fossil: 1}),
			monthlyEntry(2025, time.July, GroupTotals{Fossil: 2}),
		}
		var gapErr *SeriesGapError
		require.ErrorAs(t, series.Validate(), &gapErr)
		assert.Equal(t, "2025-05", gapErr.After)
		assert.Equal(t, "2025-07", gapErr.Before)
	})

	t.Run("error - out of order reported as duplicate", func(t *testing.T) {
		series := MonthlySeries{
			monthlyEntry(2025, time.July, GroupTotals{}),
			monthlyEntry(2025, time.May, GroupTotals{}),
		}
		var dupErr *DuplicatePeriodError
		require.ErrorAs(t, series.Validate(), &dupErr)
	})
}

func TestDailySeries_SumRange(t *testing.T) {
	makeSeries := func(from Date, days int) DailySeries {
		series := make(DailySeries, 0, days)
		for i := 0; i < days; i++ {
			series = append(series, DailyEntry{
				Date:        from.AddDays(i),
				GroupTotals: GroupTotals{Fossil: 2, Renewable: 1},
			})
		}
		return series
	}

	t.Run("success - full coverage", func(t *testing.T) {
		series := makeSeries(NewDate(2025, time.August, 1), 14)
		sum, err := series.SumRange(NewDate(2025, time.August, 1), NewDate(2025, time.August, 14))
		require.NoError(t, err)
		assert.Equal(t, GroupTotals{Fossil: 28, Renewable: 14}, sum)
	})

	t.Run("success - single day", func(t *testing.T) {
		series := makeSeries(NewDate(2025, time.August, 1), 3)
		sum, err := series.SumRange(NewDate(2025, time.August, 2), NewDate(2025, time.August, 2))
		require.NoError(t, err)
		assert.Equal(t, GroupTotals{Fossil: 2, Renewable: 1}, sum)
	})

	t.Run("error - missing span is named", func(t *testing.T) {
		series := makeSeries(NewDate(2025, time.August, 1), 5)
		_, err := series.SumRange(NewDate(2025, time.August, 1), NewDate(2025, time.August, 10))

		var missingErr *InsufficientDailyDataError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "2025-08-06..2025-08-10", missingErr.MissingRange())
	})

	t.Run("error - hole inside range", func(t *testing.T) {
		series := DailySeries{
			{Date: NewDate(2025, time.August, 1), GroupTotals: GroupTotals{Fossil: 1}},
			{Date: NewDate(2025, time.August, 3), GroupTotals: GroupTotals{Fossil: 1}},
		}
		_, err := series.SumRange(NewDate(2025, time.August, 1), NewDate(2025, time.August, 3))

		var missingErr *InsufficientDailyDataError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "2025-08-02..2025-08-02", missingErr.MissingRange())
	})
}

func TestGroupTotals(t *testing.T) {
	g := GroupTotals{Fossil: 60, Renewable: 30, Other: 10}
	assert.Equal(t, 100.0, g.Total())
	assert.Equal(t, GroupTotals{Fossil: 30, Renewable: 15, Other: 5}, g.Scale(0.5))
	assert.Equal(t, GroupTotals{Fossil: 61, Renewable: 32, Other: 13},
		g.Add(GroupTotals{Fossil: 1, Renewable: 2, Other: 3}))
}
