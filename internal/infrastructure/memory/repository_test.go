package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dombasket "github.com/estore-labs/electrostore/internal/domain/basket"
	domcat "github.com/estore-labs/electrostore/internal/domain/catalog"
	domdeal "github.com/estore-labs/electrostore/internal/domain/deal"
)

func TestCatalogRepositoryRoundTrip(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "laptop-pro-x1")
	assert.ErrorIs(t, err, domcat.ErrNotFound)

	product, err := domcat.New("laptop-pro-x1", "Laptop Pro X1", domcat.CategoryElectronics,
		decimal.RequireFromString("1200.00"), 10)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindByID(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, 10, found.Stock)
}

func TestCatalogRepositoryIsolatesStoredState(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	product, err := domcat.New("laptop-pro-x1", "Laptop Pro X1", domcat.CategoryElectronics,
		decimal.RequireFromString("1200.00"), 10)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, product))

	// Mutating the saved pointer or a returned copy must not leak into the
	// stored state; only Save commits.
	product.Stock = 0
	found, err := repo.FindByID(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, 10, found.Stock)

	found.Stock = 3
	again, err := repo.FindByID(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, 10, again.Stock)
}

func TestCatalogRepositoryRejectsMissingID(t *testing.T) {
	repo := NewCatalogRepository()

	assert.Error(t, repo.Save(context.Background(), &domcat.Product{}))
	assert.Error(t, repo.Save(context.Background(), nil))
}

func TestBasketRepositoryRoundTrip(t *testing.T) {
	repo := NewBasketRepository()
	ctx := context.Background()

	_, err := repo.FindByUserID(ctx, "alice")
	assert.ErrorIs(t, err, dombasket.ErrNotFound)

	basket := dombasket.New("b1", "alice")
	basket.MergeItem("laptop-pro-x1", 2)
	require.NoError(t, repo.Save(ctx, basket))

	found, err := repo.FindByUserID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "b1", found.ID)
	require.Len(t, found.Items, 1)

	// The returned basket is a copy.
	found.MergeItem("laptop-pro-x1", 5)
	again, err := repo.FindByUserID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
}

func TestBasketRepositoryRejectsMissingIdentity(t *testing.T) {
	repo := NewBasketRepository()

	assert.Error(t, repo.Save(context.Background(), dombasket.New("b1", "")))
	assert.Error(t, repo.Save(context.Background(), dombasket.New("", "alice")))
	assert.Error(t, repo.Save(context.Background(), nil))
}

func TestDealRepositoryRoundTrip(t *testing.T) {
	repo := NewDealRepository()
	ctx := context.Background()

	_, err := repo.FindByProductID(ctx, "laptop-pro-x1")
	assert.ErrorIs(t, err, domdeal.ErrNotFound)

	first, err := domdeal.New("d1", "laptop-pro-x1", domdeal.TypeBOGO50, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	found, err := repo.FindByProductID(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, "d1", found.ID)

	// One deal per product: the second registration replaces the first.
	second, err := domdeal.New("d2", "laptop-pro-x1", domdeal.TypeBOGO50, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	found, err = repo.FindByProductID(ctx, "laptop-pro-x1")
	require.NoError(t, err)
	assert.Equal(t, "d2", found.ID)
}

func TestDealRepositoryRejectsMissingProductID(t *testing.T) {
	repo := NewDealRepository()

	assert.Error(t, repo.Save(context.Background(), &domdeal.Deal{ID: "d1"}))
	assert.Error(t, repo.Save(context.Background(), nil))
}
