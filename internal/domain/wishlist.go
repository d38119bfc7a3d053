package domain

import "context"

type Wishlist struct {
	SessionID string    `json:"sessionId"`
	Items     []Product `json:"items"`
}

// WishlistRepository keeps a per-session set of products, deduplicated by
// product id. Adds of a present id and removes of an absent id are no-ops.
type WishlistRepository interface {
	GetItems(ctx context.Context, sessionID string) ([]Product, error)
	AddItem(ctx context.Context, sessionID string, product Product) error
	RemoveItem(ctx context.Context, sessionID string, productID int) error
	Contains(ctx context.Context, sessionID string, productID int) (bool, error)
}
