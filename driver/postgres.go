package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPool is the subset of *pgxpool.Pool the repositories and the
// transaction manager rely on. Tests substitute stubs for it.
type PostgresPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// DB wraps the connection pool handed to the wire providers.
type DB struct {
	Pool *pgxpool.Pool
}

// ConnectSQL opens a pgx pool against the given URL and verifies the
// connection with a ping.
func ConnectSQL(url string) (*DB, error) {
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err = pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Migrate creates the counter and quote tables if they do not exist and seeds
// the single counter row at zero. Safe to run on every start.
func Migrate(ctx context.Context, conn PostgresPool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quote_counter (
			id integer primary key,
			last_quote_no integer not null
		)`,
		`INSERT INTO quote_counter (id, last_quote_no)
		 VALUES (1, 0)
		 ON CONFLICT (id) DO NOTHING`,
		`CREATE TABLE IF NOT EXISTS quotes (
			quote_no text primary key,
			created_at timestamptz not null default now(),
			rep text,
			work_order text,
			due_date text,
			submitted_on text,
			unit_price numeric,
			items_json jsonb not null,
			total numeric
		)`,
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
