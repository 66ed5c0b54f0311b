package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// approvalFloor is the minimum order amount the processor authorizes.
var approvalFloor = decimal.NewFromInt(100)

type Transaction struct {
	ID        string
	OrderID   string
	Amount    decimal.Decimal
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTransaction(orderID string, amount decimal.Decimal) Transaction {
	now := time.Now().UTC()
	return Transaction{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Amount:    amount,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Process applies the authorization rule and settles the transaction
// into its terminal status.
func (t *Transaction) Process() {
	if t.Amount.GreaterThanOrEqual(approvalFloor) {
		t.Status = StatusApproved
	} else {
		t.Status = StatusDeclined
	}
	t.UpdatedAt = time.Now().UTC()
}
