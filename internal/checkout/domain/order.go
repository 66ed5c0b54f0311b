package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusApproved OrderStatus = "approved"
	StatusDeclined OrderStatus = "declined"
)

// Product is an immutable snapshot of a catalog item taken at placement
// time. It is owned by the order that references it; later catalog
// changes do not affect it.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
}

// Order is the unit of consistency for one placement: client, items and
// status. The total is always derived from the items, never stored.
type Order struct {
	ID        string
	ClientID  string
	Items     []Product
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewOrder(clientID string, items []Product) Order {
	now := time.Now().UTC()
	return Order{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Items:     items,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Total sums the item prices. Recomputed on every call so it can never
// drift from the items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price)
	}
	return total
}

// Approve moves a pending order to its approved terminal state.
func (o *Order) Approve() error {
	return o.transition(StatusApproved)
}

// Decline moves a pending order to its declined terminal state.
func (o *Order) Decline() error {
	return o.transition(StatusDeclined)
}

func (o *Order) transition(next OrderStatus) error {
	if o.Status != StatusPending {
		return fmt.Errorf("order %s: cannot transition from %s to %s", o.ID, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = time.Now().UTC()
	return nil
}
