package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mmonclus-coder/quote-web/driver"
	"github.com/mmonclus-coder/quote-web/models"
)

// ErrNotFound reports a lookup for a quote number that was never saved.
var ErrNotFound = errors.New("quote not found")

const cacheTTL = 10 * time.Minute

type Repository interface {
	Upsert(ctx context.Context, tx pgx.Tx, quote *models.Quote) error
	GetByQuoteNo(ctx context.Context, tx pgx.Tx, quoteNo string) (*models.Quote, error)
	Cache(ctx context.Context, quote *models.Quote)
}

type repository struct {
	conn   driver.PostgresPool
	cache  *redis.Client
	logger *zap.Logger
}

func NewRepository(conn driver.PostgresPool, cache *redis.Client, logger *zap.Logger) Repository {
	return &repository{
		conn:   conn,
		cache:  cache,
		logger: logger,
	}
}

// Upsert writes the full record, overwriting every field when the quote
// number already exists. There is no field-level merge.
func (r *repository) Upsert(ctx context.Context, tx pgx.Tx, quote *models.Quote) error {
	const query = `
    INSERT INTO quotes (quote_no, rep, work_order, due_date, submitted_on, unit_price, items_json, total)
    VALUES (@quote_no, @rep, @work_order, @due_date, @submitted_on, @unit_price, @items_json, @total)
    ON CONFLICT (quote_no) DO UPDATE SET
        rep = EXCLUDED.rep,
        work_order = EXCLUDED.work_order,
        due_date = EXCLUDED.due_date,
        submitted_on = EXCLUDED.submitted_on,
        unit_price = EXCLUDED.unit_price,
        items_json = EXCLUDED.items_json,
        total = EXCLUDED.total
    RETURNING created_at
    `

	itemsJSON, err := json.Marshal(quote.Items)
	if err != nil {
		return fmt.Errorf("failed to encode quote items: %w", err)
	}

	args := pgx.NamedArgs{
		"quote_no":     quote.QuoteNo,
		"rep":          quote.Rep,
		"work_order":   quote.WorkOrder,
		"due_date":     quote.DueDate,
		"submitted_on": quote.SubmittedOn,
		"unit_price":   quote.UnitPrice,
		"items_json":   itemsJSON,
		"total":        quote.Total,
	}

	if err := tx.QueryRow(ctx, query, args).Scan(&quote.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert quote: %w", err)
	}
	return nil
}

// Cache refreshes the cached copy of a quote. Callers invoke it only after
// the surrounding transaction has committed so the cache never holds a
// record the database rolled back.
func (r *repository) Cache(ctx context.Context, quote *models.Quote) {
	r.cacheSet(ctx, quote)
}

func (r *repository) GetByQuoteNo(ctx context.Context, tx pgx.Tx, quoteNo string) (*models.Quote, error) {
	if cached := r.cacheGet(ctx, quoteNo); cached != nil {
		return cached, nil
	}

	const query = `
    SELECT quote_no, created_at, rep, work_order, due_date, submitted_on, unit_price, items_json, total
    FROM quotes
    WHERE quote_no = $1
    `

	quote := models.NewQuote()
	var itemsJSON []byte
	err := tx.QueryRow(ctx, query, quoteNo).Scan(
		&quote.QuoteNo,
		&quote.CreatedAt,
		&quote.Rep,
		&quote.WorkOrder,
		&quote.DueDate,
		&quote.SubmittedOn,
		&quote.UnitPrice,
		&itemsJSON,
		&quote.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &quote.Items); err != nil {
		return nil, fmt.Errorf("failed to decode quote items: %w", err)
	}

	r.cacheSet(ctx, quote)
	return quote, nil
}

func (r *repository) cacheKey(quoteNo string) string {
	return fmt.Sprintf("quote:%s", quoteNo)
}

// cacheGet returns nil on any cache miss or failure; the caller falls back
// to the database.
func (r *repository) cacheGet(ctx context.Context, quoteNo string) *models.Quote {
	if r.cache == nil {
		return nil
	}

	raw, err := r.cache.Get(ctx, r.cacheKey(quoteNo)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("Failed to get quote from cache", zap.Error(err), zap.String("quote_no", quoteNo))
		}
		return nil
	}

	quote := models.NewQuote()
	if err := json.Unmarshal(raw, quote); err != nil {
		r.logger.Warn("Failed to decode cached quote", zap.Error(err), zap.String("quote_no", quoteNo))
		return nil
	}
	return quote
}

func (r *repository) cacheSet(ctx context.Context, quote *models.Quote) {
	if r.cache == nil {
		return
	}

	raw, err := json.Marshal(quote)
	if err != nil {
		r.logger.Warn("Failed to encode quote for cache", zap.Error(err), zap.String("quote_no", quote.QuoteNo))
		return
	}
	if err := r.cache.Set(ctx, r.cacheKey(quote.QuoteNo), raw, cacheTTL).Err(); err != nil {
		r.logger.Warn("Failed to cache quote", zap.Error(err), zap.String("quote_no", quote.QuoteNo))
	}
}
