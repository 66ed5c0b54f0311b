package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	clients  *clientsStub
	catalog  *catalogStub
	orders   *ordersStub
	payments *paymentsStub
	invoices *invoicesStub
	events   *eventsStub
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		clients: &clientsStub{
			client: &Client{
				ID:       "1c",
				Name:     "Client 1",
				Email:    "client@email.com",
				Document: "123456789",
				Address: Address{
					Street:     "Street 1",
					Number:     "1",
					Complement: "Complement 1",
					City:       "City 1",
					State:      "State 1",
					ZipCode:    "12345678",
				},
			},
		},
		catalog: catalogWith(map[string]CatalogProduct{
			"1": {ID: "1", Name: "Product 1", Description: "Product 1 description", Price: decimal.NewFromInt(40)},
			"2": {ID: "2", Name: "Product 2", Description: "Product 2 description", Price: decimal.NewFromInt(30)},
		}),
		orders:   &ordersStub{},
		payments: &paymentsStub{decision: PaymentDecision{TransactionID: "1t", Status: DecisionApproved}},
		invoices: &invoicesStub{id: "1i"},
		events:   &eventsStub{},
	}
	f.svc = NewService(discardLogger(), f.clients, f.catalog, f.orders, f.payments, f.invoices, f.events)
	return f
}

func twoProducts() PlaceOrderInput {
	return PlaceOrderInput{
		ClientID: "1c",
		Products: []ProductSelection{{ProductID: "1"}, {ProductID: "2"}},
	}
}

func TestPlaceOrderClientNotFound(t *testing.T) {
	f := newFixture()
	f.clients.client = nil

	_, err := f.svc.PlaceOrder(context.Background(), twoProducts())

	require.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, f.catalog.stockCalls, "no stock check before the client is resolved")
	assert.Empty(t, f.orders.added)
	assert.Empty(t, f.payments.requests)
}

func TestPlaceOrderNoProductsSelected(t *testing.T) {
	f := newFixture()

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{ClientID: "1c"})

	require.ErrorIs(t, err, ErrNoProductsSelected)
	assert.Len(t, f.clients.calls, 1)
	assert.Empty(t, f.catalog.stockCalls)
	assert.Empty(t, f.orders.added)
}

func TestPlaceOrderOutOfStock(t *testing.T) {
	f := newFixture()
	f.catalog.stockFn = func(id string) (StockLevel, error) {
		units := 1
		if id == "2" {
			units = 0
		}
		return StockLevel{ProductID: id, Units: units}, nil
	}

	_, err := f.svc.PlaceOrder(context.Background(), twoProducts())

	var oos *OutOfStockError
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, "2", oos.ProductID)
	assert.Len(t, f.catalog.stockCalls, 2, "one stock check per requested id")
	assert.Empty(t, f.orders.added)
	assert.Empty(t, f.payments.requests)
	assert.Empty(t, f.invoices.requests)
}

func TestPlaceOrderApproved(t *testing.T) {
	f := newFixture()

	out, err := f.svc.PlaceOrder(context.Background(), twoProducts())

	require.NoError(t, err)
	assert.Equal(t, "1i", out.InvoiceID)
	assert.Equal(t, "approved", out.Status)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(70)), "total = %s", out.Total)
	assert.Equal(t, []ProductSelection{{ProductID: "1"}, {ProductID: "2"}}, out.Products)

	require.Len(t, f.orders.added, 1)
	assert.Equal(t, out.OrderID, f.orders.added[0].ID)

	require.Len(t, f.payments.requests, 1)
	assert.Equal(t, out.OrderID, f.payments.requests[0].OrderID)
	assert.True(t, f.payments.requests[0].Amount.Equal(decimal.NewFromInt(70)))

	require.Len(t, f.invoices.requests, 1)
	inv := f.invoices.requests[0]
	assert.Equal(t, "Client 1", inv.Name)
	assert.Equal(t, "123456789", inv.Document)
	assert.Equal(t, "Street 1", inv.Address.Street)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "1", inv.Items[0].ID)
	assert.True(t, inv.Items[0].Price.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "2", inv.Items[1].ID)
	assert.True(t, inv.Items[1].Price.Equal(decimal.NewFromInt(30)))

	assert.Equal(t, []string{out.OrderID}, f.events.published)
}

func TestPlaceOrderNotApproved(t *testing.T) {
	for _, status := range []DecisionStatus{DecisionDeclined, DecisionError} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture()
			f.payments.decision = PaymentDecision{TransactionID: "1t", Status: status}

			out, err := f.svc.PlaceOrder(context.Background(), twoProducts())

			require.NoError(t, err)
			assert.Empty(t, out.InvoiceID)
			assert.Equal(t, "declined", out.Status)
			assert.True(t, out.Total.Equal(decimal.NewFromInt(70)))
			assert.Equal(t, []ProductSelection{{ProductID: "1"}, {ProductID: "2"}}, out.Products)
			assert.Len(t, f.orders.added, 1)
			assert.Empty(t, f.invoices.requests, "no invoice for a declined order")
		})
	}
}

func TestPlaceOrderPersistenceFailure(t *testing.T) {
	f := newFixture()
	f.orders.addErr = errors.New("connection reset")

	_, err := f.svc.PlaceOrder(context.Background(), twoProducts())

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Empty(t, f.payments.requests, "no payment against an unpersisted order")
	assert.Empty(t, f.invoices.requests)
}

func TestPlaceOrderPaymentCollaboratorFailure(t *testing.T) {
	f := newFixture()
	f.payments.err = errors.New("gateway timeout")

	_, err := f.svc.PlaceOrder(context.Background(), twoProducts())

	var pe *PaymentError
	require.ErrorAs(t, err, &pe)

	// The order stays behind in pending state; the error names it.
	require.Len(t, f.orders.added, 1)
	assert.Equal(t, f.orders.added[0].ID, pe.OrderID)
	assert.Empty(t, f.invoices.requests)
	assert.Empty(t, f.events.published)
}

func TestPlaceOrderInvoiceFailureAfterApproval(t *testing.T) {
	f := newFixture()
	f.invoices.err = errors.New("invoice store down")

	_, err := f.svc.PlaceOrder(context.Background(), twoProducts())

	var ie *InvoiceError
	require.ErrorAs(t, err, &ie)
	require.Len(t, f.orders.added, 1)
	assert.Equal(t, f.orders.added[0].ID, ie.OrderID)
}

func TestPlaceOrderIsNotIdempotent(t *testing.T) {
	f := newFixture()

	first, err := f.svc.PlaceOrder(context.Background(), twoProducts())
	require.NoError(t, err)
	second, err := f.svc.PlaceOrder(context.Background(), twoProducts())
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID, "identical inputs produce distinct orders")
	assert.Len(t, f.orders.added, 2)
}

func TestPlaceOrderPublishFailureDoesNotFailPlacement(t *testing.T) {
	f := newFixture()
	f.events.err = errors.New("broker unreachable")

	out, err := f.svc.PlaceOrder(context.Background(), twoProducts())

	require.NoError(t, err)
	assert.Equal(t, "approved", out.Status)
}

func TestPlaceOrderWithoutPublisher(t *testing.T) {
	f := newFixture()
	f.svc = NewService(discardLogger(), f.clients, f.catalog, f.orders, f.payments, f.invoices, nil)

	_, err := f.svc.PlaceOrder(context.Background(), twoProducts())

	require.NoError(t, err)
}
