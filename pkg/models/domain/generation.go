package domain

import "time"

// FuelTechGroup is the macro classification bucket for a generation
// technology.
type FuelTechGroup string

const (
	GroupFossil    FuelTechGroup = "fossil"
	GroupRenewable FuelTechGroup = "renewable"
	GroupOther     FuelTechGroup = "other"
)

// GenerationRecord is one raw per-fuel-tech energy observation, tagged
// with the specific technology (e.g. "coal_black", "wind") and the
// timestamp of the period it covers.
type GenerationRecord struct {
	FuelTech string
	Time     time.Time
	Value    float64 // energy quantity, GWh
}

// PeriodTotal is the aggregated quantity for one (period, group) pair.
type PeriodTotal struct {
	Period string // "YYYY-MM" or "YYYY-MM-DD" depending on granularity
	Group  FuelTechGroup
	Value  float64
}

// GroupTotals holds per-group energy sums for a single period. The share
// denominator is the sum of all three buckets, not just the two tracked
// groups.
type GroupTotals struct {
	Fossil    float64
	Renewable float64
	Other     float64
}

func (g GroupTotals) Total() float64 {
	return g.Fossil + g.Renewable + g.Other
}

// Scale multiplies every bucket by a factor.
func (g GroupTotals) Scale(factor float64) GroupTotals {
	return GroupTotals{
		Fossil:    g.Fossil * factor,
		Renewable: g.Renewable * factor,
		Other:     g.Other * factor,
	}
}

func (g GroupTotals) Add(other GroupTotals) GroupTotals {
	return GroupTotals{
		Fossil:    g.Fossil + other.Fossil,
		Renewable: g.Renewable + other.Renewable,
		Other:     g.Other + other.Other,
	}
}

// MonthlyEntry is one calendar month of grouped generation totals.
type MonthlyEntry struct {
	Month Month
	GroupTotals
}

// MonthlySeries is a chronologically ordered, gapless sequence of monthly
// grouped totals. Validate reports duplicates and gaps; the rolling engine
// refuses series that fail it.
type MonthlySeries []MonthlyEntry

// Validate checks strict calendar ordering: consecutive entries must
// differ by exactly one month.
func (s MonthlySeries) Validate() error {
	for i := 1; i < len(s); i++ {
		prev, cur := s[i-1].Month, s[i].Month
		if cur == prev {
			return &DuplicatePeriodError{Period: cur.String()}
		}
		if cur != prev.Next() {
			if cur.Before(prev) {
				return &DuplicatePeriodError{Period: cur.String()}
			}
			return &SeriesGapError{After: prev.String(), Before: cur.String()}
		}
	}
	return nil
}

// DailyEntry is one calendar day of grouped generation totals.
type DailyEntry struct {
	Date Date
	GroupTotals
}

// DailySeries is an ordered sequence of daily grouped totals. Coverage may
// span disjoint year windows; lookups go through SumRange which verifies
// every day in the requested range is present.
type DailySeries []DailyEntry

// SumRange sums grouped totals for every day in [start, end] inclusive.
// If any day in the range has no entry, it fails with
// InsufficientDailyDataError naming the missing span; it never substitutes
// zero for absent days.
func (s DailySeries) SumRange(start, end Date) (GroupTotals, error) {
	byDate := make(map[Date]GroupTotals, len(s))
	for _, e := range s {
		byDate[e.Date] = byDate[e.Date].Add(e.GroupTotals)
	}

	var sum GroupTotals
	var missingFrom, missingTo Date
	missing := false
	for d := start; !d.After(end); d = d.AddDays(1) {
		totals, ok := byDate[d]
		if !ok {
			if !missing {
				missingFrom = d
				missing = true
			}
			missingTo = d
			continue
		}
		sum = sum.Add(totals)
	}
	if missing {
		return GroupTotals{}, &InsufficientDailyDataError{From: missingFrom, To: missingTo}
	}
	return sum, nil
}

// SharePoint is one month of trailing-window percentage shares. A point
// with no generation in its window carries NaN shares; Defined reports
// whether the shares are usable numbers.
type SharePoint struct {
	Month        Month
	FossilPct    float64
	RenewablePct float64
	Estimate     bool
	Note         string
}

// ShareSeries is the ordered month-indexed output of a run, one point per
// month from the first full trailing window through the (possibly
// estimated) current month. Built once per run and not mutated after.
type ShareSeries []SharePoint
