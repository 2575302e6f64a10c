package share

import (
	"context"

	"github.com/grid-tools/fuelmix/pkg/models/domain"
)

// MonthlyProvider supplies raw per-fuel-tech generation records at
// monthly granularity for the whole history of a network feed.
type MonthlyProvider interface {
	MonthlyGeneration(ctx context.Context) ([]domain.GenerationRecord, error)
}

// DailyProvider supplies raw per-fuel-tech generation records at daily
// granularity for one calendar year. The estimator needs two distinct
// year windows: the current year to date and the matching prior-year
// window.
type DailyProvider interface {
	DailyGeneration(ctx context.Context, year int) ([]domain.GenerationRecord, error)
}
