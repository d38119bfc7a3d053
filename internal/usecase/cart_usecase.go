package usecase

import (
	"context"

	"fruitmart-backend/internal/domain"
	"fruitmart-backend/pkg/utils"
)

type CartUsecase struct {
	cartRepo    domain.CartRepository
	catalogRepo domain.CatalogRepository
}

func NewCartUsecase(cartRepo domain.CartRepository, catalogRepo domain.CatalogRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

// GetCart returns the session's ledger snapshot with the derived total.
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	lines, err := u.cartRepo.GetLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.snapshot(sessionID, lines), nil
}

// AddToCart appends a new line with quantity 1. An out-of-stock product is
// a silent no-op: the snapshot comes back unchanged and the caller sees
// that nothing was added. Only an id outside the catalog is an error.
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, productID int) (*domain.Cart, error) {
	product, err := u.catalogRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if product.InStock() {
		if err := u.cartRepo.AppendLine(ctx, sessionID, *product); err != nil {
			return nil, err
		}
	}

	return u.GetCart(ctx, sessionID)
}

// RemoveFromCart drops every line matching the product id. Unknown ids are
// no-ops, not errors.
func (u *CartUsecase) RemoveFromCart(ctx context.Context, sessionID string, productID int) (*domain.Cart, error) {
	if err := u.cartRepo.RemoveLines(ctx, sessionID, productID); err != nil {
		return nil, err
	}
	return u.GetCart(ctx, sessionID)
}

// UpdateQuantity applies delta to every matching line, clamped to a floor
// of 1. Decrementing at the floor leaves the line in place; removal is a
// separate intent.
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, productID, delta int) (*domain.Cart, error) {
	if err := u.cartRepo.AdjustQuantity(ctx, sessionID, productID, delta); err != nil {
		return nil, err
	}
	return u.GetCart(ctx, sessionID)
}

func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if err := u.cartRepo.ClearCart(ctx, sessionID); err != nil {
		return nil, err
	}
	return u.GetCart(ctx, sessionID)
}

func (u *CartUsecase) snapshot(sessionID string, lines []domain.OrderLine) *domain.Cart {
	total := 0.0
	for _, line := range lines {
		total += line.Subtotal()
	}
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	return &domain.Cart{
		SessionID: sessionID,
		Items:     lines,
		Total:     utils.RoundPrice(total),
	}
}
