package quote

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mmonclus-coder/quote-web/driver"
	"github.com/mmonclus-coder/quote-web/models"
)

type Service interface {
	Save(ctx context.Context, quote *models.Quote) error
	GetByQuoteNo(ctx context.Context, quoteNo string) (*models.Quote, error)
}

type service struct {
	repo               Repository
	transactionManager driver.TxManager
}

func NewService(repo Repository, tm driver.TxManager) Service {
	return &service{
		repo:               repo,
		transactionManager: tm,
	}
}

// Save upserts the full record; a re-save under the same quote number
// overwrites the earlier one. The cache is refreshed only once the
// transaction commits.
func (s *service) Save(ctx context.Context, quote *models.Quote) error {
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Upsert(ctx, tx, quote)
	})
	if err != nil {
		return err
	}
	s.repo.Cache(ctx, quote)
	return nil
}

func (s *service) GetByQuoteNo(ctx context.Context, quoteNo string) (*models.Quote, error) {
	var quote *models.Quote
	err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		q, err := s.repo.GetByQuoteNo(ctx, tx, quoteNo)
		if err != nil {
			return err
		}
		quote = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}
