package application

import (
	"context"

	"github.com/gmatheus/commerce-core/internal/catalog/domain"
)

type ProductRepository interface {
	Add(ctx context.Context, p domain.Product) error
	Find(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
