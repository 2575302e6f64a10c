package adapters

import (
	"testing"
	"time"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/grid-tools/fuelmix/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageMapping(t *testing.T) {
	t.Run("monthly record keys by YYYY-MM", func(t *testing.T) {
		rec := domain.GenerationRecord{
			FuelTech: "wind",
			Time:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Value:    123.4,
		}

		stored := MapGenerationRecordToStoreEnergy(rec, "NEM", IntervalMonthly)
		assert.Equal(t, "2025-07", stored.Period)
		assert.Equal(t, "NEM", stored.Network)

		back, err := MapStoreEnergyToGenerationRecord(stored)
		require.NoError(t, err)
		assert.Equal(t, rec, back)
	})

	t.Run("daily record keys by YYYY-MM-DD", func(t *testing.T) {
		rec := domain.GenerationRecord{
			FuelTech: "coal_black",
			Time:     time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
			Value:    9.5,
		}

		stored := MapGenerationRecordToStoreEnergy(rec, "NEM", IntervalDaily)
		assert.Equal(t, "2025-08-14", stored.Period)

		back, err := MapStoreEnergyToGenerationRecord(stored)
		require.NoError(t, err)
		assert.Equal(t, rec, back)
	})

	t.Run("error - corrupt period", func(t *testing.T) {
		_, err := MapStoreEnergyToGenerationRecord(store.EnergyRecord{
			Interval: IntervalMonthly,
			Period:   "not-a-period",
		})
		assert.Error(t, err)
	})
}
