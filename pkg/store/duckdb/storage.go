package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const EnergyRecordsSchema = `
	CREATE TABLE IF NOT EXISTS energy_records (
		network VARCHAR NOT NULL,
		interval VARCHAR NOT NULL,
		period VARCHAR NOT NULL,
		fuel_tech VARCHAR NOT NULL,
		value DOUBLE NOT NULL,
		PRIMARY KEY (network, interval, period, fuel_tech)
	);
`

const ShareRunsSchema = `
	CREATE TABLE IF NOT EXISTS share_runs (
		network VARCHAR NOT NULL,
		as_of DATE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		months INTEGER NOT NULL
	);
`

var bootQueries = []string{
	EnergyRecordsSchema,
	ShareRunsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}

type txKey struct{}

// WithTransaction binds a transaction to the context so store operations
// participate in it instead of running on the bare connection.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
