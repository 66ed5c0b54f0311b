package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/checkout/domain"
)

type PlaceOrderInput struct {
	ClientID string             `json:"clientId"`
	Products []ProductSelection `json:"products"`
}

type ProductSelection struct {
	ProductID string `json:"productId"`
}

type PlaceOrderOutput struct {
	OrderID   string             `json:"orderId"`
	InvoiceID string             `json:"invoiceId,omitempty"`
	Status    string             `json:"status"`
	Total     decimal.Decimal    `json:"total"`
	Products  []ProductSelection `json:"products"`
}

// Service sequences one order placement across the client, catalog,
// order, payment and invoice contexts. Each collaborator call is its
// own unit of work: there is no cross-store transaction and nothing is
// compensated after the order has been persisted.
type Service struct {
	log       *slog.Logger
	clients   ClientDirectory
	orders    OrderRepository
	payments  PaymentGateway
	invoices  InvoiceIssuer
	validator *StockValidator
	resolver  *ProductResolver
	events    EventPublisher
}

func NewService(
	log *slog.Logger,
	clients ClientDirectory,
	catalog Catalog,
	orders OrderRepository,
	payments PaymentGateway,
	invoices InvoiceIssuer,
	events EventPublisher,
) *Service {
	return &Service{
		log:       log,
		clients:   clients,
		orders:    orders,
		payments:  payments,
		invoices:  invoices,
		validator: NewStockValidator(catalog),
		resolver:  NewProductResolver(catalog),
		events:    events,
	}
}

// PlaceOrder runs the placement phases in strict sequence: client
// lookup, stock validation, product resolution, persistence, payment,
// then conditional invoicing. Failures up to persistence leave no side
// effect. A payment or invoicing failure leaves the persisted order
// behind in pending state; the returned error carries the order id so
// the caller can reconcile.
//
// TODO: expose a reconciliation hook for orders stranded in pending
// when the payment collaborator fails mid-flight.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	client, err := s.clients.Find(ctx, in.ClientID)
	if err != nil {
		return PlaceOrderOutput{}, fmt.Errorf("find client %s: %w", in.ClientID, err)
	}
	if client == nil {
		return PlaceOrderOutput{}, ErrClientNotFound
	}

	productIDs := make([]string, len(in.Products))
	for i, p := range in.Products {
		productIDs[i] = p.ProductID
	}

	if err := s.validator.Validate(ctx, productIDs); err != nil {
		return PlaceOrderOutput{}, err
	}

	products, err := s.resolver.ResolveAll(ctx, productIDs)
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	order := domain.NewOrder(client.ID, products)
	if err := s.orders.Add(ctx, order); err != nil {
		return PlaceOrderOutput{}, &PersistenceError{Err: err}
	}

	decision, err := s.payments.Process(ctx, PaymentRequest{OrderID: order.ID, Amount: order.Total()})
	if err != nil {
		return PlaceOrderOutput{}, &PaymentError{OrderID: order.ID, Err: err}
	}

	var invoiceID string
	if decision.Status == DecisionApproved {
		_ = order.Approve()
		invoiceID, err = s.invoices.Generate(ctx, s.invoiceFor(client, order))
		if err != nil {
			return PlaceOrderOutput{}, &InvoiceError{OrderID: order.ID, Err: err}
		}
	} else {
		_ = order.Decline()
	}

	s.publish(ctx, order, invoiceID)

	s.log.Info("order placed",
		"order_id", order.ID,
		"client_id", client.ID,
		"status", string(order.Status),
		"total", order.Total().String(),
	)

	return PlaceOrderOutput{
		OrderID:   order.ID,
		InvoiceID: invoiceID,
		Status:    string(order.Status),
		Total:     order.Total(),
		Products:  in.Products,
	}, nil
}

// FindOrder is the read path over the order store; it is not part of
// the placement write path.
func (s *Service) FindOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.Find(ctx, id)
}

func (s *Service) invoiceFor(client *Client, order domain.Order) InvoiceOrder {
	items := make([]InvoiceItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = InvoiceItem{ID: item.ID, Name: item.Name, Price: item.Price}
	}
	return InvoiceOrder{
		Name:     client.Name,
		Document: client.Document,
		Address:  client.Address,
		Items:    items,
	}
}

func (s *Service) publish(ctx context.Context, order domain.Order, invoiceID string) {
	if s.events == nil {
		return
	}
	if err := s.events.OrderPlaced(ctx, order, invoiceID); err != nil {
		s.log.Error("order placed event publish failed", "order_id", order.ID, "err", err)
	}
}
