package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	price := decimal.RequireFromString("49.99")

	_, err := New("webcam", "", CategoryElectronics, price, 10)
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = New("webcam", "Webcam 1080p", CategoryElectronics, decimal.Zero, 10)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = New("webcam", "Webcam 1080p", CategoryElectronics, price, -1)
	require.ErrorIs(t, err, ErrInvalidStock)

	product, err := New("webcam", "Webcam 1080p", CategoryElectronics, price, 10)
	require.NoError(t, err)
	assert.Equal(t, "webcam", product.ID)
	assert.True(t, product.Available())
}

func TestDecrementStock(t *testing.T) {
	product := &Product{ID: "router", Name: "Router Wi-Fi 6", Stock: 5, Price: decimal.RequireFromString("89.00")}

	require.NoError(t, product.DecrementStock(3))
	assert.Equal(t, 2, product.Stock)

	err := product.DecrementStock(3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, product.Stock, "failed decrement must leave stock unchanged")

	var insufficient *InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "router", insufficient.ProductID)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 3, insufficient.Requested)
	assert.Equal(t, "insufficient stock for product router: available 2, requested 3", err.Error())
}

func TestDecrementStockRejectsNonPositiveQuantity(t *testing.T) {
	product := &Product{ID: "router", Stock: 5}

	assert.ErrorIs(t, product.DecrementStock(0), ErrInvalidQuantity)
	assert.ErrorIs(t, product.DecrementStock(-1), ErrInvalidQuantity)
	assert.Equal(t, 5, product.Stock)
}

func TestIncrementStock(t *testing.T) {
	product := &Product{ID: "router", Stock: 0}

	require.NoError(t, product.IncrementStock(4))
	assert.Equal(t, 4, product.Stock)
	assert.ErrorIs(t, product.IncrementStock(0), ErrInvalidQuantity)
}

func TestCloneIsIndependent(t *testing.T) {
	product := &Product{ID: "router", Stock: 5}
	clone := product.Clone()
	clone.Stock = 99

	assert.Equal(t, 5, product.Stock)
}
