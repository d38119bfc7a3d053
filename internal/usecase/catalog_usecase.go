package usecase

import (
	"context"
	"fmt"

	"fruitmart-backend/config"
	"fruitmart-backend/internal/domain"
	"fruitmart-backend/pkg/cache"
)

type CatalogUsecase struct {
	repo  domain.CatalogRepository
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(repo domain.CatalogRepository, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

type productPage struct {
	Products []domain.Product
	Total    int64
}

// ListProducts returns the visible product sequence for the filter. The
// catalog never changes after seeding, so pages are cached by their full
// filter key.
func (u *CatalogUsecase) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	filter = u.normalize(filter)

	// %q keeps the free-text fields unambiguous; a colon inside the query
	// must not alias a neighboring field's key.
	key := fmt.Sprintf("products:%q:%q:%q:%d:%d",
		filter.Category, filter.Query, filter.Sort, filter.Limit, filter.Offset)
	if val, found := u.cache.Get(key); found {
		page := val.(productPage)
		return page.Products, page.Total, nil
	}

	products, total, err := u.repo.GetProducts(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	u.cache.Set(key, productPage{Products: products, Total: total}, u.cfg.CacheProductTTL)
	return products, total, nil
}

// GetCategories returns the selectable category tabs, "all" first.
func (u *CatalogUsecase) GetCategories(ctx context.Context) ([]string, error) {
	key := "categories:all"
	if val, found := u.cache.Get(key); found {
		return val.([]string), nil
	}

	cats, err := u.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := append([]string{domain.CategoryAll}, cats...)
	u.cache.Set(key, out, u.cfg.CacheCategoryTTL)
	return out, nil
}

func (u *CatalogUsecase) GetProductDetails(ctx context.Context, slug string) (*domain.Product, error) {
	key := fmt.Sprintf("product:slug:%s", slug)
	if val, found := u.cache.Get(key); found {
		return val.(*domain.Product), nil
	}

	product, err := u.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product != nil {
		u.cache.Set(key, product, u.cfg.CacheProductTTL)
	}

	return product, nil
}

func (u *CatalogUsecase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	return u.repo.GetProductByID(ctx, id)
}

func (u *CatalogUsecase) normalize(filter domain.ProductFilter) domain.ProductFilter {
	if filter.Limit <= 0 {
		filter.Limit = u.cfg.DefaultPageSize
	}
	if filter.Limit > u.cfg.MaxPageSize {
		filter.Limit = u.cfg.MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}
