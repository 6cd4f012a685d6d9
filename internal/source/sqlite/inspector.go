package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/decnet100/acr-telemetry/internal/variability"
)

// ColumnSpec is one column of a table schema, in declaration order.
type ColumnSpec struct {
	Name string
	Type string
}

// Inspector wraps a read-only view of one telemetry database file. All
// queries are aggregates; nothing here writes.
type Inspector struct {
	db      *sql.DB
	timeout time.Duration
}

func Open(path string) (*Inspector, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite open failed: %w", err)
	}

	return &Inspector{
		db:      db,
		timeout: 5 * time.Second,
	}, nil
}

func (i *Inspector) Close() error {
	return i.db.Close()
}

// FetchSchema returns the table's columns in schema-definition order.
func (i *Inspector) FetchSchema(ctx context.Context, table string) ([]ColumnSpec, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	rows, err := i.db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info("%s")`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []ColumnSpec
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, declType   string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols = append(cols, ColumnSpec{Name: name, Type: declType})
	}
	return cols, rows.Err()
}

func (i *Inspector) FetchRowCount(ctx context.Context, table string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	var count int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)
	if err := i.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (i *Inspector) FetchNonNullCount(ctx context.Context, table, field string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	var count int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s" WHERE "%s" IS NOT NULL`, table, field)
	if err := i.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// FetchNumericAggregates computes min/max over non-null rows with zeros
// excluded from the bounds (zero is overloaded as "not reporting" in
// this telemetry), plus distinct and total counts with zeros included.
func (i *Inspector) FetchNumericAggregates(ctx context.Context, table, field string) (variability.NumericAggregates, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT
			MIN(CASE WHEN "%[2]s" != 0 THEN "%[2]s" END),
			MAX(CASE WHEN "%[2]s" != 0 THEN "%[2]s" END),
			COUNT(DISTINCT "%[2]s"),
			COUNT(*)
		FROM "%[1]s"
		WHERE "%[2]s" IS NOT NULL
	`, table, field)

	var agg variability.NumericAggregates
	err := i.db.QueryRowContext(ctx, query).Scan(&agg.Min, &agg.Max, &agg.DistinctCount, &agg.TotalCount)
	if err != nil {
		return variability.NumericAggregates{}, err
	}
	return agg, nil
}

// FetchTextCounts returns distinct and total counts over non-null,
// non-empty values.
func (i *Inspector) FetchTextCounts(ctx context.Context, table, field string) (distinct, total int64, err error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT "%[2]s"), COUNT(*)
		FROM "%[1]s"
		WHERE "%[2]s" IS NOT NULL AND "%[2]s" != ''
	`, table, field)

	if err := i.db.QueryRowContext(ctx, query).Scan(&distinct, &total); err != nil {
		return 0, 0, err
	}
	return distinct, total, nil
}

// FetchTextValue returns one non-empty value; used when the column is
// known to hold exactly one distinct value.
func (i *Inspector) FetchTextValue(ctx context.Context, table, field string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT "%[2]s" FROM "%[1]s" WHERE "%[2]s" IS NOT NULL AND "%[2]s" != '' LIMIT 1`, table, field)

	var value string
	if err := i.db.QueryRowContext(ctx, query).Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

func (i *Inspector) FetchTextSamples(ctx context.Context, table, field string, limit int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT DISTINCT "%[2]s" FROM "%[1]s" WHERE "%[2]s" IS NOT NULL AND "%[2]s" != '' LIMIT %[3]d`, table, field, limit)

	rows, err := i.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		samples = append(samples, v)
	}
	return samples, rows.Err()
}
