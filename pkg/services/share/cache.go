package share

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grid-tools/fuelmix/pkg/adapters"
	"github.com/grid-tools/fuelmix/pkg/models/domain"
	"github.com/grid-tools/fuelmix/pkg/models/store"
	"github.com/grid-tools/fuelmix/pkg/store/duckdb/energy"
	"github.com/rs/zerolog"
)

// FeedProvider bundles both provider roles as the feed client serves them.
type FeedProvider interface {
	MonthlyProvider
	DailyProvider
}

// CachedProvider wraps a feed provider with the embedded energy cache.
// Online it writes through: every successful fetch replaces the cached
// slice before records are returned. Offline it serves reads from the
// cache alone, so a previously fetched network can be recomputed with no
// network access.
type CachedProvider struct {
	network string
	inner   FeedProvider
	store   energy.Store
	offline bool
}

func NewCachedProvider(network string, inner FeedProvider, store energy.Store, offline bool) *CachedProvider {
	return &CachedProvider{
		network: network,
		inner:   inner,
		store:   store,
		offline: offline,
	}
}

func (p *CachedProvider) MonthlyGeneration(ctx context.Context) ([]domain.GenerationRecord, error) {
	if p.offline {
		return p.cachedRecords(ctx, adapters.IntervalMonthly, "")
	}

	records, err := p.inner.MonthlyGeneration(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.cacheRecords(ctx, adapters.IntervalMonthly, "", records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *CachedProvider) DailyGeneration(ctx context.Context, year int) ([]domain.GenerationRecord, error) {
	prefix := strconv.Itoa(year)
	if p.offline {
		return p.cachedRecords(ctx, adapters.IntervalDaily, prefix)
	}

	records, err := p.inner.DailyGeneration(ctx, year)
	if err != nil {
		return nil, err
	}
	if err := p.cacheRecords(ctx, adapters.IntervalDaily, prefix, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *CachedProvider) cacheRecords(ctx context.Context, interval, prefix string, records []domain.GenerationRecord) error {
	cached := make([]store.EnergyRecord, 0, len(records))
	for _, rec := range records {
		cached = append(cached, adapters.MapGenerationRecordToStoreEnergy(rec, p.network, interval))
	}
	if err := p.store.Replace(ctx, p.network, interval, prefix, cached); err != nil {
		return fmt.Errorf("cache %s records: %w", interval, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("network", p.network).
		Str("interval", interval).
		Int("records", len(cached)).
		Msg("cached energy records")
	return nil
}

func (p *CachedProvider) cachedRecords(ctx context.Context, interval, prefix string) ([]domain.GenerationRecord, error) {
	cached, err := p.store.GetRecords(ctx, p.network, interval)
	if err != nil {
		return nil, fmt.Errorf("read cached %s records: %w", interval, err)
	}

	records := make([]domain.GenerationRecord, 0, len(cached))
	for _, rec := range cached {
		if prefix != "" && len(rec.Period) >= len(prefix) && rec.Period[:len(prefix)] != prefix {
			continue
		}
		mapped, err := adapters.MapStoreEnergyToGenerationRecord(rec)
		if err != nil {
			return nil, err
		}
		records = append(records, mapped)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no cached %s records for network %s", interval, p.network)
	}
	return records, nil
}
