package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/checkout/domain"
)

// The checkout core reaches every other bounded context through the
// narrow interfaces below. Absence is modeled as a nil result, not an
// error, so transport failures stay distinguishable from lookups that
// simply found nothing.

type Address struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	ZipCode    string
}

type Client struct {
	ID       string
	Name     string
	Email    string
	Document string
	Address  Address
}

type StockLevel struct {
	ProductID string
	Units     int
}

type CatalogProduct struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
}

type DecisionStatus string

const (
	DecisionApproved DecisionStatus = "approved"
	DecisionDeclined DecisionStatus = "declined"
	DecisionError    DecisionStatus = "error"
)

type PaymentRequest struct {
	OrderID string
	Amount  decimal.Decimal
}

type PaymentDecision struct {
	TransactionID string
	OrderID       string
	Amount        decimal.Decimal
	Status        DecisionStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type InvoiceItem struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

type InvoiceOrder struct {
	Name     string
	Document string
	Address  Address
	Items    []InvoiceItem
}

type ClientDirectory interface {
	Find(ctx context.Context, id string) (*Client, error)
}

type Catalog interface {
	CheckStock(ctx context.Context, productID string) (StockLevel, error)
	Find(ctx context.Context, productID string) (*CatalogProduct, error)
}

type OrderRepository interface {
	Add(ctx context.Context, o domain.Order) error
	Find(ctx context.Context, id string) (domain.Order, error)
}

type PaymentGateway interface {
	Process(ctx context.Context, req PaymentRequest) (PaymentDecision, error)
}

type InvoiceIssuer interface {
	Generate(ctx context.Context, inv InvoiceOrder) (string, error)
}

// EventPublisher announces completed placements. Publishing is best
// effort: a failure is logged and never fails the placement.
type EventPublisher interface {
	OrderPlaced(ctx context.Context, o domain.Order, invoiceID string) error
}
