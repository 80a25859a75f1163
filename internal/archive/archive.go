// Package archive keeps a rolling history of daily market closes in
// Postgres. The refresh job writes to it after every successful fetch;
// the markets endpoint reads it back for the fallback history series.
package archive

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altay/inkdash/internal/snapshot"
)

const schema = `
	CREATE TABLE IF NOT EXISTS closes (
		symbol TEXT NOT NULL,
		date TEXT NOT NULL,
		close DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (symbol, date)
	)
`

type Archive struct {
	pool *pgxpool.Pool
}

func Open(ctx context.Context, databaseURL string) (*Archive, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return &Archive{pool: pool}, nil
}

func (a *Archive) Close() {
	a.pool.Close()
}

// RecordCloses upserts the closes for every symbol in one batch.
// Re-recording the same date overwrites the stored close, so intraday
// runs converge on the final value.
func (a *Archive) RecordCloses(ctx context.Context, history map[string][]snapshot.Close) error {
	batch := &pgx.Batch{}
	for symbol, closes := range history {
		for _, c := range closes {
			batch.Queue(`
				INSERT INTO closes (symbol, date, close)
				VALUES ($1, $2, $3)
				ON CONFLICT (symbol, date) DO UPDATE SET close = EXCLUDED.close
			`, symbol, c.Date, c.Close)
		}
	}

	results := a.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("recording close: %w", err)
		}
	}
	return nil
}

// History returns up to days recent closes per symbol, oldest first.
// Symbols with no recorded closes are absent from the result.
func (a *Archive) History(ctx context.Context, symbols []string, days int) (map[string][]snapshot.Close, error) {
	history := make(map[string][]snapshot.Close, len(symbols))

	for _, symbol := range symbols {
		closes, err := a.symbolHistory(ctx, symbol, days)
		if err != nil {
			return nil, fmt.Errorf("history %s: %w", symbol, err)
		}
		if len(closes) > 0 {
			history[symbol] = closes
		}
	}

	return history, nil
}

func (a *Archive) symbolHistory(ctx context.Context, symbol string, days int) ([]snapshot.Close, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT date, close
		FROM closes
		WHERE symbol = $1
		ORDER BY date DESC
		LIMIT $2
	`, symbol, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var closes []snapshot.Close
	for rows.Next() {
		var c snapshot.Close
		if err := rows.Scan(&c.Date, &c.Close); err != nil {
			return nil, err
		}
		closes = append(closes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest first out of the query, oldest first for callers.
	for i, j := 0, len(closes)-1; i < j; i, j = i+1, j-1 {
		closes[i], closes[j] = closes[j], closes[i]
	}

	return closes, nil
}
