package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager runs a function inside a single database transaction.
type TxManager interface {
	ExecuteTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// TransactionManager is the pgx-backed TxManager, committing on success and
// rolling back on error or panic.
type TransactionManager struct {
	conn PostgresPool
}

var _ TxManager = (*TransactionManager)(nil)

func NewTransactionManager(conn PostgresPool) *TransactionManager {
	return &TransactionManager{conn: conn}
}

func (tm *TransactionManager) ExecuteTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := tm.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
