package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// StockValidator decides whether every requested product can be
// fulfilled. Stock checks fan out concurrently, one per id, and the
// decision waits for all of them: when several products are exhausted
// the error names the first one in the original input order, not the
// first response to arrive.
type StockValidator struct {
	catalog Catalog
}

func NewStockValidator(catalog Catalog) *StockValidator {
	return &StockValidator{catalog: catalog}
}

func (v *StockValidator) Validate(ctx context.Context, productIDs []string) error {
	if len(productIDs) == 0 {
		return ErrNoProductsSelected
	}

	levels := make([]StockLevel, len(productIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range productIDs {
		g.Go(func() error {
			level, err := v.catalog.CheckStock(gctx, id)
			if err != nil {
				return fmt.Errorf("check stock for product %s: %w", id, err)
			}
			levels[i] = level
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, id := range productIDs {
		if levels[i].Units <= 0 {
			return &OutOfStockError{ProductID: id}
		}
	}
	return nil
}
