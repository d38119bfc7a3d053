package memory

import (
	"context"
	"sync"
	"time"

	"fruitmart-backend/internal/domain"
	"fruitmart-backend/pkg/cache"
)

// CartRepository keeps per-session order lines in the shared cache store.
// Sessions expire with their TTL; an expired or unknown session reads as an
// empty cart. The mutex covers the read-modify-write cycle, the cache
// itself only the individual Get/Set.
type CartRepository struct {
	store cache.CacheService
	ttl   time.Duration
	mu    sync.Mutex
}

func NewCartRepository(store cache.CacheService, ttl time.Duration) *CartRepository {
	return &CartRepository{
		store: store,
		ttl:   ttl,
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *CartRepository) GetLines(ctx context.Context, sessionID string) ([]domain.OrderLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(sessionID), nil
}

func (r *CartRepository) AppendLine(ctx context.Context, sessionID string, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Always a fresh line; a second add of the same product yields a second
	// line with its own quantity rather than a merge.
	lines := r.load(sessionID)
	lines = append(lines, domain.OrderLine{Product: product, Quantity: 1})
	r.store.Set(cartKey(sessionID), lines, r.ttl)
	return nil
}

func (r *CartRepository) RemoveLines(ctx context.Context, sessionID string, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.load(sessionID)
	kept := lines[:0]
	for _, line := range lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	r.store.Set(cartKey(sessionID), kept, r.ttl)
	return nil
}

func (r *CartRepository) AdjustQuantity(ctx context.Context, sessionID string, productID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.load(sessionID)
	for i := range lines {
		if lines[i].Product.ID != productID {
			continue
		}
		q := lines[i].Quantity + delta
		if q < 1 {
			q = 1
		}
		lines[i].Quantity = q
	}
	r.store.Set(cartKey(sessionID), lines, r.ttl)
	return nil
}

func (r *CartRepository) ClearCart(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Delete(cartKey(sessionID))
	return nil
}

func (r *CartRepository) load(sessionID string) []domain.OrderLine {
	if val, found := r.store.Get(cartKey(sessionID)); found {
		if lines, ok := val.([]domain.OrderLine); ok {
			return lines
		}
	}
	return nil
}

func (r *CartRepository) snapshot(sessionID string) []domain.OrderLine {
	lines := r.load(sessionID)
	out := make([]domain.OrderLine, len(lines))
	copy(out, lines)
	return out
}
