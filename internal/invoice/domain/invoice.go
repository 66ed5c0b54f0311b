package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type Address struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	ZipCode    string
}

type Item struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

type Invoice struct {
	ID        string
	Name      string
	Document  string
	Address   Address
	Items     []Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewInvoice(name, document string, address Address, items []Item) Invoice {
	now := time.Now().UTC()
	return Invoice{
		ID:        uuid.NewString(),
		Name:      name,
		Document:  document,
		Address:   address,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (i *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.Items {
		total = total.Add(item.Price)
	}
	return total
}
