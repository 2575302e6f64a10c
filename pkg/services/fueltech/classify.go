package fueltech

import (
	"sort"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
)

// Policy controls what the aggregator does with a fuel technology that is
// absent from the classification mapping.
type Policy int

const (
	// PolicyBucketOther counts unmapped fuel techs in the "other" bucket so
	// the share denominator stays complete. This is the default.
	PolicyBucketOther Policy = iota
	// PolicyStrict rejects the run with a ClassificationError.
	PolicyStrict
)

// DefaultClassification maps each known fuel technology to its macro
// group. Technologies not listed here fall under the aggregator's policy.
func DefaultClassification() map[string]domain.FuelTechGroup {
	return map[string]domain.FuelTechGroup{
		"coal_black":          domain.GroupFossil,
		"coal_brown":          domain.GroupFossil,
		"distillate":          domain.GroupFossil,
		"gas_ccgt":            domain.GroupFossil,
		"gas_lfg":             domain.GroupFossil,
		"gas_ocgt":            domain.GroupFossil,
		"gas_recip":           domain.GroupFossil,
		"gas_steam":           domain.GroupFossil,
		"gas_wcmg":            domain.GroupFossil,
		"bioenergy_biogas":    domain.GroupRenewable,
		"bioenergy_biomass":   domain.GroupRenewable,
		"hydro":               domain.GroupRenewable,
		"solar_rooftop":       domain.GroupRenewable,
		"solar_utility":       domain.GroupRenewable,
		"wind":                domain.GroupRenewable,
		"battery_discharging": domain.GroupOther,
		"nuclear":             domain.GroupOther,
	}
}

// DefaultExclusions lists pseudo fuel techs that are consumption, not
// generation, and must never enter the totals.
func DefaultExclusions() map[string]bool {
	return map[string]bool{
		"pumps":            true,
		"battery_charging": true,
	}
}

// Classifier groups raw per-fuel-tech generation records into per-period
// fossil/renewable/other totals. It is a pure transformation; the same
// inputs always produce the same series.
type Classifier struct {
	mapping  map[string]domain.FuelTechGroup
	excluded map[string]bool
	policy   Policy
}

type Settings struct {
	// Mapping overrides the default fuel-tech classification when non-nil.
	Mapping map[string]domain.FuelTechGroup
	// Excluded overrides the default consumption-side exclusions when non-nil.
	Excluded map[string]bool
	Policy   Policy
}

func NewClassifier(settings Settings) *Classifier {
	mapping := settings.Mapping
	if mapping == nil {
		mapping = DefaultClassification()
	}
	excluded := settings.Excluded
	if excluded == nil {
		excluded = DefaultExclusions()
	}
	return &Classifier{
		mapping:  mapping,
		excluded: excluded,
		policy:   settings.Policy,
	}
}

// Classify resolves a fuel technology to its group. Under PolicyStrict an
// unmapped technology is a ClassificationError; otherwise it lands in the
// "other" bucket.
func (c *Classifier) Classify(fuelTech string) (domain.FuelTechGroup, error) {
	if group, ok := c.mapping[fuelTech]; ok {
		return group, nil
	}
	if c.policy == PolicyStrict {
		return "", &domain.ClassificationError{FuelTech: fuelTech}
	}
	return domain.GroupOther, nil
}

// MonthlySeries aggregates records into a chronologically ordered monthly
// series of grouped totals.
func (c *Classifier) MonthlySeries(records []domain.GenerationRecord) (domain.MonthlySeries, error) {
	totals := make(map[domain.Month]domain.GroupTotals)
	for _, rec := range records {
		if c.excluded[rec.FuelTech] {
			continue
		}
		group, err := c.Classify(rec.FuelTech)
		if err != nil {
			return nil, err
		}
		month := domain.MonthOf(rec.Time)
		totals[month] = totals[month].Add(groupValue(group, rec.Value))
	}

	months := make([]domain.Month, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	series := make(domain.MonthlySeries, 0, len(months))
	for _, m := range months {
		series = append(series, domain.MonthlyEntry{Month: m, GroupTotals: totals[m]})
	}
	return series, nil
}

// DailySeries aggregates records into a chronologically ordered daily
// series of grouped totals.
func (c *Classifier) DailySeries(records []domain.GenerationRecord) (domain.DailySeries, error) {
	totals := make(map[domain.Date]domain.GroupTotals)
	for _, rec := range records {
		if c.excluded[rec.FuelTech] {
			continue
		}
		group, err := c.Classify(rec.FuelTech)
		if err != nil {
			return nil, err
		}
		day := domain.DateOf(rec.Time)
		totals[day] = totals[day].Add(groupValue(group, rec.Value))
	}

	days := make([]domain.Date, 0, len(totals))
	for d := range totals {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make(domain.DailySeries, 0, len(days))
	for _, d := range days {
		series = append(series, domain.DailyEntry{Date: d, GroupTotals: totals[d]})
	}
	return series, nil
}

// PeriodTotals flattens a monthly series into per-(period, group) totals.
func PeriodTotals(series domain.MonthlySeries) []domain.PeriodTotal {
	out := make([]domain.PeriodTotal, 0, len(series)*3)
	for _, entry := range series {
		period := entry.Month.String()
		out = append(out,
			domain.PeriodTotal{Period: period, Group: domain.GroupFossil, Value: entry.Fossil},
			domain.PeriodTotal{Period: period, Group: domain.GroupRenewable, Value: entry.Renewable},
			domain.PeriodTotal{Period: period, Group: domain.GroupOther, Value: entry.Other},
		)
	}
	return out
}

func groupValue(group domain.FuelTechGroup, value float64) domain.GroupTotals {
	switch group {
	case domain.GroupFossil:
		return domain.GroupTotals{Fossil: value}
	case domain.GroupRenewable:
		return domain.GroupTotals{Renewable: value}
	default:
		return domain.GroupTotals{Other: value}
	}
}
