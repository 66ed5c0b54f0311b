package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gmatheus/commerce-core/internal/checkout/domain"
)

// Hand-rolled counting stubs. The call records matter as much as the
// return values: the placement contract fixes how often each
// collaborator is reached.

type clientsStub struct {
	client *Client
	err    error
	calls  []string
}

func (s *clientsStub) Find(_ context.Context, id string) (*Client, error) {
	s.calls = append(s.calls, id)
	return s.client, s.err
}

type catalogStub struct {
	mu         sync.Mutex
	stockFn    func(id string) (StockLevel, error)
	findFn     func(id string) (*CatalogProduct, error)
	stockCalls []string
	findCalls  []string
}

func (s *catalogStub) CheckStock(_ context.Context, id string) (StockLevel, error) {
	s.mu.Lock()
	s.stockCalls = append(s.stockCalls, id)
	s.mu.Unlock()
	if s.stockFn == nil {
		return StockLevel{ProductID: id, Units: 1}, nil
	}
	return s.stockFn(id)
}

func (s *catalogStub) Find(_ context.Context, id string) (*CatalogProduct, error) {
	s.mu.Lock()
	s.findCalls = append(s.findCalls, id)
	s.mu.Unlock()
	if s.findFn == nil {
		return nil, nil
	}
	return s.findFn(id)
}

type ordersStub struct {
	addErr error
	added  []domain.Order
	found  domain.Order
}

func (s *ordersStub) Add(_ context.Context, o domain.Order) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, o)
	return nil
}

func (s *ordersStub) Find(_ context.Context, id string) (domain.Order, error) {
	return s.found, nil
}

type paymentsStub struct {
	decision PaymentDecision
	err      error
	requests []PaymentRequest
}

func (s *paymentsStub) Process(_ context.Context, req PaymentRequest) (PaymentDecision, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return PaymentDecision{}, s.err
	}
	d := s.decision
	d.OrderID = req.OrderID
	d.Amount = req.Amount
	return d, nil
}

type invoicesStub struct {
	id       string
	err      error
	requests []InvoiceOrder
}

func (s *invoicesStub) Generate(_ context.Context, inv InvoiceOrder) (string, error) {
	s.requests = append(s.requests, inv)
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

type eventsStub struct {
	err       error
	published []string
}

func (s *eventsStub) OrderPlaced(_ context.Context, o domain.Order, _ string) error {
	s.published = append(s.published, o.ID)
	return s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
