package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitmart-backend/internal/domain"
	infracache "fruitmart-backend/internal/infrastructure/cache"
)

func newWishlistRepo() *WishlistRepository {
	store := infracache.NewMemoryCache(time.Minute, time.Minute)
	return NewWishlistRepository(store, time.Minute)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	repo := newWishlistRepo()
	ctx := context.Background()
	apple := fixtureProducts()[0]

	require.NoError(t, repo.AddItem(ctx, "s1", apple))
	require.NoError(t, repo.AddItem(ctx, "s1", apple))

	items, err := repo.GetItems(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, apple.ID, items[0].ID)
}

func TestWishlistRemove(t *testing.T) {
	repo := newWishlistRepo()
	ctx := context.Background()
	products := fixtureProducts()

	require.NoError(t, repo.AddItem(ctx, "s1", products[0]))
	require.NoError(t, repo.AddItem(ctx, "s1", products[2]))

	require.NoError(t, repo.RemoveItem(ctx, "s1", products[0].ID))

	items, err := repo.GetItems(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, products[2].ID, items[0].ID)

	// Absent id is a no-op.
	require.NoError(t, repo.RemoveItem(ctx, "s1", 999))
	items, _ = repo.GetItems(ctx, "s1")
	assert.Len(t, items, 1)
}

func TestWishlistContains(t *testing.T) {
	repo := newWishlistRepo()
	ctx := context.Background()
	apple := fixtureProducts()[0]

	found, err := repo.Contains(ctx, "s1", apple.ID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.AddItem(ctx, "s1", apple))

	found, err = repo.Contains(ctx, "s1", apple.ID)
	require.NoError(t, err)
	assert.True(t, found)

	// Membership is per session.
	found, err = repo.Contains(ctx, "s2", apple.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

var _ domain.WishlistRepository = (*WishlistRepository)(nil)
