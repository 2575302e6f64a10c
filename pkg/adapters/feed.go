package adapters

import (
	"fmt"
	"strings"
	"time"

	"github.com/grid-tools/fuelmix/pkg/models/api"
	"github.com/grid-tools/fuelmix/pkg/models/domain"
)

// Feed intervals as they appear in upstream statsets.
const (
	IntervalMonthly = "1M"
	IntervalDaily   = "1D"
)

// MapStatSetToGenerationRecords extracts per-fuel-tech generation records
// from an upstream energy statset. Only series with ids of the form
// "{country}.{network}.fuel_tech.{fuel_tech}.energy" contribute; emissions
// and market-value series are skipped, as are null history values. The
// period of each record is decoded positionally from history.start and
// the given interval.
func MapStatSetToGenerationRecords(set api.StatSet, interval string) ([]domain.GenerationRecord, error) {
	var records []domain.GenerationRecord
	for _, series := range set.Data {
		fuelTech, ok := fuelTechFromSeriesID(series.ID)
		if !ok {
			continue
		}

		start, err := parseHistoryStart(series.History.Start)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", series.ID, err)
		}

		for i, value := range series.History.Data {
			if value == nil {
				continue
			}
			records = append(records, domain.GenerationRecord{
				FuelTech: fuelTech,
				Time:     offsetPeriod(start, interval, i),
				Value:    *value,
			})
		}
	}
	return records, nil
}

// fuelTechFromSeriesID pulls the fuel technology out of a series id of
// the form "{country}.{network}.fuel_tech.{fuel_tech}.energy".
func fuelTechFromSeriesID(id string) (string, bool) {
	parts := strings.Split(id, ".")
	if len(parts) < 5 || parts[2] != "fuel_tech" || parts[4] != "energy" {
		return "", false
	}
	return parts[3], true
}

func parseHistoryStart(start string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, start); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable history start %q", start)
}

func offsetPeriod(start time.Time, interval string, i int) time.Time {
	if interval == IntervalDaily {
		return start.AddDate(0, 0, i)
	}
	return start.AddDate(0, i, 0)
}
