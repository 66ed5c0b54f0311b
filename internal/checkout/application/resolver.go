package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gmatheus/commerce-core/internal/checkout/domain"
)

// ProductResolver turns catalog ids into the immutable product
// snapshots an order carries. Availability is not its concern; the
// StockValidator runs first and independently.
type ProductResolver struct {
	catalog Catalog
}

func NewProductResolver(catalog Catalog) *ProductResolver {
	return &ProductResolver{catalog: catalog}
}

func (r *ProductResolver) Resolve(ctx context.Context, productID string) (domain.Product, error) {
	p, err := r.catalog.Find(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("find product %s: %w", productID, err)
	}
	if p == nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", productID, ErrProductNotFound)
	}
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}, nil
}

// ResolveAll resolves every id concurrently and returns the snapshots
// in the order the ids were requested.
func (r *ProductResolver) ResolveAll(ctx context.Context, productIDs []string) ([]domain.Product, error) {
	products := make([]domain.Product, len(productIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range productIDs {
		g.Go(func() error {
			p, err := r.Resolve(gctx, id)
			if err != nil {
				return err
			}
			products[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return products, nil
}
