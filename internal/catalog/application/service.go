package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/catalog/domain"
)

type AddProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	Stock         int             `json:"stock"`
}

type StockReport struct {
	ProductID string `json:"productId"`
	Units     int    `json:"stock"`
}

type Service struct {
	repo ProductRepository
}

func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, in AddProductInput) (domain.Product, error) {
	product := domain.NewProduct(in.Name, in.Description, in.PurchasePrice, in.SalesPrice, in.Stock)
	if err := s.repo.Add(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("add product: %w", err)
	}
	return product, nil
}

func (s *Service) Find(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// CheckStock reports the available units for a product. An unknown id
// is an error, not a zero-stock report.
func (s *Service) CheckStock(ctx context.Context, id string) (StockReport, error) {
	product, err := s.repo.Find(ctx, id)
	if err != nil {
		return StockReport{}, err
	}
	return StockReport{ProductID: product.ID, Units: product.Stock}, nil
}
