package domain

import "context"

// --- Cart Entities ---

// OrderLine is one cart entry pairing a product with a quantity.
// Quantity is always >= 1; UpdateQuantity clamps instead of removing.
type OrderLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l OrderLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

type Cart struct {
	SessionID string      `json:"sessionId"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"` // derived, rounded to two decimals
}

// --- Interfaces ---

// CartRepository owns the per-session order lines. Every operation on an id
// with no matching line is a silent no-op; there is no error channel for
// missing products.
type CartRepository interface {
	GetLines(ctx context.Context, sessionID string) ([]OrderLine, error)
	// AppendLine adds a fresh line with quantity 1. A product already in the
	// cart gets a second line rather than a merged quantity.
	AppendLine(ctx context.Context, sessionID string, product Product) error
	// RemoveLines removes every line whose product id matches.
	RemoveLines(ctx context.Context, sessionID string, productID int) error
	// AdjustQuantity applies delta to every matching line, flooring at 1.
	AdjustQuantity(ctx context.Context, sessionID string, productID, delta int) error
	ClearCart(ctx context.Context, sessionID string) error
}
