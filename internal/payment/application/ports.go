package application

import (
	"context"

	"github.com/gmatheus/commerce-core/internal/payment/domain"
)

type TransactionRepository interface {
	Save(ctx context.Context, t domain.Transaction) error
}
