package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmatheus/commerce-core/internal/checkout/application"
	"github.com/gmatheus/commerce-core/internal/checkout/domain"
)

type fakeClients struct{ client *application.Client }

func (f *fakeClients) Find(context.Context, string) (*application.Client, error) {
	return f.client, nil
}

type fakeCatalog struct{ products map[string]application.CatalogProduct }

func (f *fakeCatalog) CheckStock(_ context.Context, id string) (application.StockLevel, error) {
	return application.StockLevel{ProductID: id, Units: 10}, nil
}

func (f *fakeCatalog) Find(_ context.Context, id string) (*application.CatalogProduct, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeOrders struct{ orders map[string]domain.Order }

func (f *fakeOrders) Add(_ context.Context, o domain.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrders) Find(_ context.Context, id string) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

type fakePayments struct{ status application.DecisionStatus }

func (f *fakePayments) Process(_ context.Context, req application.PaymentRequest) (application.PaymentDecision, error) {
	return application.PaymentDecision{TransactionID: "1t", OrderID: req.OrderID, Amount: req.Amount, Status: f.status}, nil
}

type fakeInvoices struct{}

func (fakeInvoices) Generate(context.Context, application.InvoiceOrder) (string, error) {
	return "1i", nil
}

func newTestHandler(t *testing.T) (*Handler, *fakeClients) {
	t.Helper()
	clients := &fakeClients{client: &application.Client{ID: "1c", Name: "Client 1", Document: "123456789"}}
	catalog := &fakeCatalog{products: map[string]application.CatalogProduct{
		"1": {ID: "1", Name: "Product 1", Price: decimal.NewFromInt(40)},
		"2": {ID: "2", Name: "Product 2", Price: decimal.NewFromInt(30)},
	}}
	log := slog.New(slog.DiscardHandler)
	svc := application.NewService(log, clients, catalog, &fakeOrders{orders: map[string]domain.Order{}}, &fakePayments{status: application.DecisionApproved}, fakeInvoices{}, nil)
	return NewHandler(log, svc), clients
}

func TestPlaceOrderEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	body := `{"clientId":"1c","products":[{"productId":"1"},{"productId":"2"}]}`
	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		OrderID   string          `json:"orderId"`
		InvoiceID string          `json:"invoiceId"`
		Status    string          `json:"status"`
		Total     decimal.Decimal `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.OrderID)
	assert.Equal(t, "1i", out.InvoiceID)
	assert.Equal(t, "approved", out.Status)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(70)))
}

func TestPlaceOrderEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		noClient   bool
		wantStatus int
	}{
		{
			name:       "invalid body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown client",
			body:       `{"clientId":"0","products":[{"productId":"1"}]}`,
			noClient:   true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty selection",
			body:       `{"clientId":"1c","products":[]}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown product",
			body:       `{"clientId":"1c","products":[{"productId":"99"}]}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, clients := newTestHandler(t)
			if tt.noClient {
				clients.client = nil
			}
			srv := httptest.NewServer(h.Routes())
			defer srv.Close()

			resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetOrderEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	t.Run("not found", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/missing")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("round trip", func(t *testing.T) {
		body := `{"clientId":"1c","products":[{"productId":"1"}]}`
		resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		var placed struct {
			OrderID string `json:"orderId"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&placed))
		resp.Body.Close()

		resp, err = http.Get(srv.URL + "/" + placed.OrderID)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			OrderID string `json:"orderId"`
			Status  string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, placed.OrderID, got.OrderID)
		// The store holds the snapshot taken before payment; its status
		// does not advance.
		assert.Equal(t, "pending", got.Status)
	})
}
