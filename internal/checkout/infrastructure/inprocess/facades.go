// Package inprocess binds the checkout collaborator ports to the
// sibling bounded contexts of this monolith. Each facade is a thin
// translation layer: checkout never sees another module's domain types.
package inprocess

import (
	"context"
	"errors"

	catalogapp "github.com/gmatheus/commerce-core/internal/catalog/application"
	catalogdomain "github.com/gmatheus/commerce-core/internal/catalog/domain"
	"github.com/gmatheus/commerce-core/internal/checkout/application"
	clientapp "github.com/gmatheus/commerce-core/internal/client/application"
	clientdomain "github.com/gmatheus/commerce-core/internal/client/domain"
	invoiceapp "github.com/gmatheus/commerce-core/internal/invoice/application"
	paymentapp "github.com/gmatheus/commerce-core/internal/payment/application"
	paymentdomain "github.com/gmatheus/commerce-core/internal/payment/domain"
)

type ClientFacade struct {
	svc *clientapp.Service
}

func NewClientFacade(svc *clientapp.Service) *ClientFacade {
	return &ClientFacade{svc: svc}
}

func (f *ClientFacade) Find(ctx context.Context, id string) (*application.Client, error) {
	c, err := f.svc.Find(ctx, id)
	if errors.Is(err, clientdomain.ErrClientNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &application.Client{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Document: c.Document,
		Address: application.Address{
			Street:     c.Address.Street,
			Number:     c.Address.Number,
			Complement: c.Address.Complement,
			City:       c.Address.City,
			State:      c.Address.State,
			ZipCode:    c.Address.ZipCode,
		},
	}, nil
}

type CatalogFacade struct {
	svc *catalogapp.Service
}

func NewCatalogFacade(svc *catalogapp.Service) *CatalogFacade {
	return &CatalogFacade{svc: svc}
}

func (f *CatalogFacade) CheckStock(ctx context.Context, productID string) (application.StockLevel, error) {
	report, err := f.svc.CheckStock(ctx, productID)
	if err != nil {
		return application.StockLevel{}, err
	}
	return application.StockLevel{ProductID: report.ProductID, Units: report.Units}, nil
}

func (f *CatalogFacade) Find(ctx context.Context, productID string) (*application.CatalogProduct, error) {
	p, err := f.svc.Find(ctx, productID)
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &application.CatalogProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.SalesPrice,
	}, nil
}

type PaymentFacade struct {
	svc *paymentapp.Service
}

func NewPaymentFacade(svc *paymentapp.Service) *PaymentFacade {
	return &PaymentFacade{svc: svc}
}

func (f *PaymentFacade) Process(ctx context.Context, req application.PaymentRequest) (application.PaymentDecision, error) {
	t, err := f.svc.Process(ctx, req.OrderID, req.Amount)
	if err != nil {
		return application.PaymentDecision{}, err
	}
	status := application.DecisionDeclined
	if t.Status == paymentdomain.StatusApproved {
		status = application.DecisionApproved
	}
	return application.PaymentDecision{
		TransactionID: t.ID,
		OrderID:       t.OrderID,
		Amount:        t.Amount,
		Status:        status,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}, nil
}

type InvoiceFacade struct {
	svc *invoiceapp.Service
}

func NewInvoiceFacade(svc *invoiceapp.Service) *InvoiceFacade {
	return &InvoiceFacade{svc: svc}
}

func (f *InvoiceFacade) Generate(ctx context.Context, inv application.InvoiceOrder) (string, error) {
	items := make([]invoiceapp.InvoiceItem, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = invoiceapp.InvoiceItem{ID: item.ID, Name: item.Name, Price: item.Price}
	}
	generated, err := f.svc.Generate(ctx, invoiceapp.GenerateInvoiceInput{
		Name:       inv.Name,
		Document:   inv.Document,
		Street:     inv.Address.Street,
		Number:     inv.Address.Number,
		Complement: inv.Address.Complement,
		City:       inv.Address.City,
		State:      inv.Address.State,
		ZipCode:    inv.Address.ZipCode,
		Items:      items,
	})
	if err != nil {
		return "", err
	}
	return generated.ID, nil
}
