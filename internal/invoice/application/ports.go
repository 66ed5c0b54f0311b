package application

import (
	"context"

	"github.com/gmatheus/commerce-core/internal/invoice/domain"
)

type InvoiceRepository interface {
	Add(ctx context.Context, inv domain.Invoice) error
	Find(ctx context.Context, id string) (domain.Invoice, error)
}
