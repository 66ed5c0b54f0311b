package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/invoice/domain"
)

type GenerateInvoiceInput struct {
	Name       string        `json:"name"`
	Document   string        `json:"document"`
	Street     string        `json:"street"`
	Number     string        `json:"number"`
	Complement string        `json:"complement"`
	City       string        `json:"city"`
	State      string        `json:"state"`
	ZipCode    string        `json:"zipCode"`
	Items      []InvoiceItem `json:"items"`
}

type InvoiceItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Service struct {
	repo InvoiceRepository
}

func NewService(repo InvoiceRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Generate(ctx context.Context, in GenerateInvoiceInput) (domain.Invoice, error) {
	items := make([]domain.Item, len(in.Items))
	for i, item := range in.Items {
		items[i] = domain.Item{ID: item.ID, Name: item.Name, Price: item.Price}
	}
	invoice := domain.NewInvoice(in.Name, in.Document, domain.Address{
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		City:       in.City,
		State:      in.State,
		ZipCode:    in.ZipCode,
	}, items)

	if err := s.repo.Add(ctx, invoice); err != nil {
		return domain.Invoice{}, fmt.Errorf("add invoice: %w", err)
	}
	return invoice, nil
}

func (s *Service) Find(ctx context.Context, id string) (domain.Invoice, error) {
	return s.repo.Find(ctx, id)
}
