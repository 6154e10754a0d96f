package counter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mmonclus-coder/quote-web/driver"
)

// Service issues quote numbers. Each successful call returns a value exactly
// one greater than the previous one; a failed call issues nothing.
type Service interface {
	Issue(ctx context.Context) (int64, error)
}

type service struct {
	repo               Repository
	transactionManager driver.TxManager
	logger             *zap.Logger
}

func NewService(repo Repository, tm driver.TxManager, logger *zap.Logger) Service {
	return &service{
		repo:               repo,
		transactionManager: tm,
		logger:             logger,
	}
}

func (s *service) Issue(ctx context.Context) (int64, error) {
	var issued int64
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		n, err := s.repo.Next(ctx, tx)
		if err != nil {
			return err
		}
		issued = n
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to issue quote number", zap.Error(err))
		return 0, err
	}

	s.logger.Info("Issued quote number", zap.Int64("quote_no", issued))
	return issued, nil
}
