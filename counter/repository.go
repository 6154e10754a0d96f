package counter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mmonclus-coder/quote-web/driver"
)

type Repository interface {
	Next(ctx context.Context, tx pgx.Tx) (int64, error)
}

type repository struct {
	conn driver.PostgresPool
}

func NewRepository(conn driver.PostgresPool) Repository {
	return &repository{conn: conn}
}

// Next increments the durable counter and returns the new value in one
// statement, so two concurrent callers can never observe the same result.
func (r *repository) Next(ctx context.Context, tx pgx.Tx) (int64, error) {
	const query = `
    UPDATE quote_counter
    SET last_quote_no = last_quote_no + 1
    WHERE id = 1
    RETURNING last_quote_no
    `

	var n int64
	if err := tx.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to advance quote counter: %w", err)
	}
	return n, nil
}
