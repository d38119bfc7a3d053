package memory

import (
	"context"
	"sync"
	"time"

	"fruitmart-backend/internal/domain"
	"fruitmart-backend/pkg/cache"
)

// WishlistRepository keeps a per-session product set deduplicated by id.
type WishlistRepository struct {
	store cache.CacheService
	ttl   time.Duration
	mu    sync.Mutex
}

func NewWishlistRepository(store cache.CacheService, ttl time.Duration) *WishlistRepository {
	return &WishlistRepository{
		store: store,
		ttl:   ttl,
	}
}

func wishlistKey(sessionID string) string {
	return "wishlist:" + sessionID
}

func (r *WishlistRepository) GetItems(ctx context.Context, sessionID string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load(sessionID)
	out := make([]domain.Product, len(items))
	copy(out, items)
	return out, nil
}

func (r *WishlistRepository) AddItem(ctx context.Context, sessionID string, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load(sessionID)
	for _, item := range items {
		if item.ID == product.ID {
			return nil
		}
	}
	items = append(items, product)
	r.store.Set(wishlistKey(sessionID), items, r.ttl)
	return nil
}

func (r *WishlistRepository) RemoveItem(ctx context.Context, sessionID string, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load(sessionID)
	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	r.store.Set(wishlistKey(sessionID), kept, r.ttl)
	return nil
}

func (r *WishlistRepository) Contains(ctx context.Context, sessionID string, productID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.load(sessionID) {
		if item.ID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *WishlistRepository) load(sessionID string) []domain.Product {
	if val, found := r.store.Get(wishlistKey(sessionID)); found {
		if items, ok := val.([]domain.Product); ok {
			return items
		}
	}
	return nil
}
