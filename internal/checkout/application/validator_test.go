package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockValidatorEmptySelection(t *testing.T) {
	catalog := &catalogStub{}
	v := NewStockValidator(catalog)

	err := v.Validate(context.Background(), nil)

	require.ErrorIs(t, err, ErrNoProductsSelected)
	assert.Empty(t, catalog.stockCalls, "stock collaborator must not be invoked for an empty selection")
}

func TestStockValidatorOutOfStock(t *testing.T) {
	catalog := &catalogStub{
		stockFn: func(id string) (StockLevel, error) {
			units := 1
			if id == "1" {
				units = 0
			}
			return StockLevel{ProductID: id, Units: units}, nil
		},
	}
	v := NewStockValidator(catalog)

	err := v.Validate(context.Background(), []string{"1"})
	var oos *OutOfStockError
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, "1", oos.ProductID)

	err = v.Validate(context.Background(), []string{"0", "1"})
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, "1", oos.ProductID)

	// Every id in both calls was checked exactly once.
	assert.Len(t, catalog.stockCalls, 3)
}

func TestStockValidatorReportsFirstInInputOrder(t *testing.T) {
	// Both products are exhausted and the later one answers first; the
	// error must still name the first id of the input.
	catalog := &catalogStub{
		stockFn: func(id string) (StockLevel, error) {
			if id == "a" {
				time.Sleep(20 * time.Millisecond)
			}
			return StockLevel{ProductID: id, Units: 0}, nil
		},
	}
	v := NewStockValidator(catalog)

	err := v.Validate(context.Background(), []string{"a", "b"})

	var oos *OutOfStockError
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, "a", oos.ProductID)
	assert.ElementsMatch(t, []string{"a", "b"}, catalog.stockCalls)
}

func TestStockValidatorCollaboratorError(t *testing.T) {
	boom := errors.New("catalog unavailable")
	catalog := &catalogStub{
		stockFn: func(id string) (StockLevel, error) {
			return StockLevel{}, boom
		},
	}
	v := NewStockValidator(catalog)

	err := v.Validate(context.Background(), []string{"1", "2"})
	require.ErrorIs(t, err, boom)
}
