package energy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/grid-tools/fuelmix/pkg/models/store"
	"github.com/grid-tools/fuelmix/pkg/store/duckdb"
)

// Store caches fetched per-fuel-tech energy records and logs completed
// share runs. Replace swaps a (network, interval) slice atomically so a
// refresh never leaves a half-written cache behind; a non-empty
// periodPrefix narrows the swap to matching periods (e.g. one year of
// daily records).
type Store interface {
	Replace(ctx context.Context, network, interval, periodPrefix string, records []store.EnergyRecord) error
	GetRecords(ctx context.Context, network, interval string) ([]store.EnergyRecord, error)
	LogRun(ctx context.Context, run store.ShareRun) error
	LastRun(ctx context.Context, network string) (*store.ShareRun, error)
}

type energyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &energyStore{db: db}, nil
}

func (s *energyStore) Replace(ctx context.Context, network, interval, periodPrefix string, records []store.EnergyRecord) error {
	tx := duckdb.GetTransaction(ctx)
	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback()
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM energy_records WHERE network = ? AND interval = ? AND period LIKE ? || '%'`,
		network, interval, periodPrefix,
	); err != nil {
		return fmt.Errorf("clear cached records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO energy_records (network, interval, period, fuel_tech, value)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if _, err := stmt.ExecContext(ctx,
			network, interval, record.Period, record.FuelTech, record.Value,
		); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	if ownTx {
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
	}
	return nil
}

func (s *energyStore) GetRecords(ctx context.Context, network, interval string) ([]store.EnergyRecord, error) {
	query := `
		SELECT network, interval, period, fuel_tech, value
		FROM energy_records
		WHERE network = ? AND interval = ?
		ORDER BY period, fuel_tech
	`
	rows, err := s.db.QueryContext(ctx, query, network, interval)
	if err != nil {
		return nil, fmt.Errorf("query cached records: %w", err)
	}
	defer rows.Close()

	records := make([]store.EnergyRecord, 0)
	for rows.Next() {
		var rec store.EnergyRecord
		if err := rows.Scan(&rec.Network, &rec.Interval, &rec.Period, &rec.FuelTech, &rec.Value); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *energyStore) LogRun(ctx context.Context, run store.ShareRun) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO share_runs (network, as_of, created_at, months) VALUES (?, ?, ?, ?)`,
		run.Network, run.AsOf, run.CreatedAt, run.Months,
	)
	if err != nil {
		return fmt.Errorf("log run: %w", err)
	}
	return nil
}

func (s *energyStore) LastRun(ctx context.Context, network string) (*store.ShareRun, error) {
	query := `
		SELECT network, as_of, created_at, months
		FROM share_runs
		WHERE network = ?
		ORDER BY created_at DESC
		LIMIT 1
	`
	var run store.ShareRun
	err := s.db.QueryRowContext(ctx, query, network).Scan(&run.Network, &run.AsOf, &run.CreatedAt, &run.Months)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last run: %w", err)
	}
	return &run, nil
}
