package application

import (
	"errors"
	"fmt"
)

// Failures before the order is persisted leave no side effect. From the
// persistence step onward a failure may leave an order in the store
// whose status never advances past pending; those failures carry the
// order id so the caller can reconcile out of band.

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrNoProductsSelected = errors.New("no products selected")
	ErrProductNotFound    = errors.New("product not found")
)

// OutOfStockError names the first requested product, in input order,
// whose stock is exhausted.
type OutOfStockError struct {
	ProductID string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %s is not available in stock", e.ProductID)
}

// PersistenceError reports a failed order write. Nothing was committed:
// payment is never attempted against an unpersisted order.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("add order: %v", e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

// PaymentError reports a payment collaborator failure after the order
// was persisted. The order remains in the store in pending state.
type PaymentError struct {
	OrderID string
	Err     error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("process payment for order %s: %v", e.OrderID, e.Err)
}
func (e *PaymentError) Unwrap() error { return e.Err }

// InvoiceError reports an invoicing failure after payment approval. The
// order is persisted and the payment has been taken.
type InvoiceError struct {
	OrderID string
	Err     error
}

func (e *InvoiceError) Error() string {
	return fmt.Sprintf("generate invoice for order %s: %v", e.OrderID, e.Err)
}
func (e *InvoiceError) Unwrap() error { return e.Err }
