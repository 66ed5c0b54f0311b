package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID            string
	Name          string
	Description   string
	PurchasePrice decimal.Decimal
	SalesPrice    decimal.Decimal
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProduct(name, description string, purchasePrice, salesPrice decimal.Decimal, stock int) Product {
	now := time.Now().UTC()
	return Product{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   description,
		PurchasePrice: purchasePrice,
		SalesPrice:    salesPrice,
		Stock:         stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
