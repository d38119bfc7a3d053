package usecase

import (
	"context"

	"fruitmart-backend/internal/domain"
)

type WishlistUsecase struct {
	repo        domain.WishlistRepository
	catalogRepo domain.CatalogRepository
}

func NewWishlistUsecase(repo domain.WishlistRepository, catalogRepo domain.CatalogRepository) *WishlistUsecase {
	return &WishlistUsecase{
		repo:        repo,
		catalogRepo: catalogRepo,
	}
}

func (u *WishlistUsecase) GetMyWishlist(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	items, err := u.repo.GetItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}
	return &domain.Wishlist{SessionID: sessionID, Items: items}, nil
}

// AddToWishlist inserts the product unless an entry with the same id is
// already present; the second add of an id is a no-op.
func (u *WishlistUsecase) AddToWishlist(ctx context.Context, sessionID string, productID int) error {
	product, err := u.catalogRepo.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return u.repo.AddItem(ctx, sessionID, *product)
}

func (u *WishlistUsecase) RemoveFromWishlist(ctx context.Context, sessionID string, productID int) error {
	return u.repo.RemoveItem(ctx, sessionID, productID)
}

func (u *WishlistUsecase) IsInWishlist(ctx context.Context, sessionID string, productID int) (bool, error) {
	return u.repo.Contains(ctx, sessionID, productID)
}
