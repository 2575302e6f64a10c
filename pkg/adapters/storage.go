package adapters

import (
	"fmt"
	"time"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/grid-tools/fuelmix/pkg/models/store"
)

// MapGenerationRecordToStoreEnergy converts a raw generation record into
// its cached representation for a given network and interval.
func MapGenerationRecordToStoreEnergy(rec domain.GenerationRecord, network, interval string) store.EnergyRecord {
	period := rec.Time.Format("2006-01")
	if interval == IntervalDaily {
		period = rec.Time.Format("2006-01-02")
	}
	return store.EnergyRecord{
		Network:  network,
		Interval: interval,
		Period:   period,
		FuelTech: rec.FuelTech,
		Value:    rec.Value,
	}
}

// MapStoreEnergyToGenerationRecord converts a cached energy record back
// into a raw generation record.
func MapStoreEnergyToGenerationRecord(rec store.EnergyRecord) (domain.GenerationRecord, error) {
	layout := "2006-01"
	if rec.Interval == IntervalDaily {
		layout = "2006-01-02"
	}
	t, err := parsePeriod(layout, rec.Period)
	if err != nil {
		return domain.GenerationRecord{}, err
	}
	return domain.GenerationRecord{
		FuelTech: rec.FuelTech,
		Time:     t,
		Value:    rec.Value,
	}, nil
}

func parsePeriod(layout, period string) (time.Time, error) {
	t, err := time.Parse(layout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period %q: %w", period, err)
	}
	return t, nil
}
