package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/payment/domain"
)

type Service struct {
	repo TransactionRepository
}

func NewService(repo TransactionRepository) *Service {
	return &Service{repo: repo}
}

// Process authorizes the amount for an order and records the resulting
// transaction. Every decision is persisted, approved or not.
func (s *Service) Process(ctx context.Context, orderID string, amount decimal.Decimal) (domain.Transaction, error) {
	t := domain.NewTransaction(orderID, amount)
	t.Process()

	if err := s.repo.Save(ctx, t); err != nil {
		return domain.Transaction{}, fmt.Errorf("save transaction for order %s: %w", orderID, err)
	}
	return t, nil
}
