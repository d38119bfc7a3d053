package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitmart-backend/internal/domain"
	infracache "fruitmart-backend/internal/infrastructure/cache"
	"fruitmart-backend/internal/repository/memory"
)

const testSession = "test-session"

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Apple", Slug: "apple", Category: domain.CategoryFruits, Price: 20, Stock: 50, Rating: 4.5, Reviews: 120},
		{ID: 2, Name: "Banana", Slug: "banana", Category: domain.CategoryFruits, Price: 15, Stock: 0, Rating: 4.0, Reviews: 80},
		{ID: 3, Name: "Lemon", Slug: "lemon", Category: domain.CategoryCitrus, Price: 19.99, Stock: 30, Rating: 4.5, Reviews: 200},
	}
}

func newCartUsecase() *CartUsecase {
	store := infracache.NewMemoryCache(time.Minute, time.Minute)
	cartRepo := memory.NewCartRepository(store, time.Minute)
	catalogRepo := memory.NewCatalogRepository(testProducts())
	return NewCartUsecase(cartRepo, catalogRepo)
}

func TestAddToCartAndStockGate(t *testing.T) {
	// Apple (stock 50) goes in; Banana (stock 0) is silently refused.
	uc := newCartUsecase()
	ctx := context.Background()

	cart, err := uc.AddToCart(ctx, testSession, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 20.0, cart.Total)

	cart, err = uc.AddToCart(ctx, testSession, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Apple", cart.Items[0].Product.Name)
	assert.Equal(t, 20.0, cart.Total)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	uc := newCartUsecase()

	_, err := uc.AddToCart(context.Background(), testSession, 999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	cart, err := uc.GetCart(context.Background(), testSession)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestAddToCartDuplicateLines(t *testing.T) {
	uc := newCartUsecase()
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, testSession, 1)
	require.NoError(t, err)
	cart, err := uc.AddToCart(ctx, testSession, 1)
	require.NoError(t, err)

	// A second add yields a second line, never a merged quantity.
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 40.0, cart.Total)
}

func TestUpdateQuantityClampsAtFloor(t *testing.T) {
	uc := newCartUsecase()
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, testSession, 1)
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity(ctx, testSession, 1, -5)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 20.0, cart.Total)

	cart, err = uc.UpdateQuantity(ctx, testSession, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 80.0, cart.Total)
}

func TestUpdateQuantityQuantityNeverBelowOne(t *testing.T) {
	uc := newCartUsecase()
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, testSession, 1)
	require.NoError(t, err)

	for _, delta := range []int{-1, -10, 2, -100, 1, -3} {
		cart, err := uc.UpdateQuantity(ctx, testSession, 1, delta)
		require.NoError(t, err)
		for _, line := range cart.Items {
			assert.GreaterOrEqual(t, line.Quantity, 1)
		}
	}
}

func TestRemoveFromCart(t *testing.T) {
	uc := newCartUsecase()
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, testSession, 1)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, testSession, 3)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, testSession, 1)
	require.NoError(t, err)

	cart, err := uc.RemoveFromCart(ctx, testSession, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Product.ID)

	// Unknown id is a no-op.
	cart, err = uc.RemoveFromCart(ctx, testSession, 999)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartTotalRounding(t *testing.T) {
	uc := newCartUsecase()
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, testSession, 3) // 19.99
	require.NoError(t, err)
	cart, err := uc.UpdateQuantity(ctx, testSession, 3, 2) // qty 3
	require.NoError(t, err)

	assert.Equal(t, 59.97, cart.Total)
}

func TestGetCartEmptySnapshot(t *testing.T) {
	uc := newCartUsecase()

	cart, err := uc.GetCart(context.Background(), testSession)
	require.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
	assert.Equal(t, testSession, cart.SessionID)
}
