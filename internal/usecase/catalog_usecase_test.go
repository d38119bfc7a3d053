package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitmart-backend/config"
	"fruitmart-backend/internal/domain"
	infracache "fruitmart-backend/internal/infrastructure/cache"
	"fruitmart-backend/internal/repository/memory"
)

func newCatalogUsecase() *CatalogUsecase {
	cfg := &config.Config{
		CacheProductTTL:  time.Minute,
		CacheCategoryTTL: time.Minute,
		DefaultPageSize:  500,
		MaxPageSize:      500,
	}
	repo := memory.NewCatalogRepository(testProducts())
	return NewCatalogUsecase(repo, infracache.NewMemoryCache(time.Minute, time.Minute), cfg)
}

func TestListProductsFiltersAndCaches(t *testing.T) {
	uc := newCatalogUsecase()
	ctx := context.Background()

	filter := domain.ProductFilter{Category: domain.CategoryCitrus, Query: "Lemon"}

	products, total, err := uc.ListProducts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Lemon", products[0].Name)

	// Second read comes from cache and must match.
	again, totalAgain, err := uc.ListProducts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, total, totalAgain)
	assert.Equal(t, products, again)
}

func TestListProductsCacheKeysDoNotAlias(t *testing.T) {
	// Free text may contain the key separator; "apple:x" + sort "y" must
	// not share a cache entry with "apple" + sort "x:y".
	uc := newCatalogUsecase()
	ctx := context.Background()

	empty, total, err := uc.ListProducts(ctx, domain.ProductFilter{Query: "apple:x", Sort: "y"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, empty)

	products, total, err := uc.ListProducts(ctx, domain.ProductFilter{Query: "apple", Sort: "x:y"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Apple", products[0].Name)
}

func TestListProductsClampsLimit(t *testing.T) {
	uc := newCatalogUsecase()

	products, total, err := uc.ListProducts(context.Background(), domain.ProductFilter{Limit: 100000})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 3)
}

func TestGetCategoriesPrependsAll(t *testing.T) {
	uc := newCatalogUsecase()

	cats, err := uc.GetCategories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cats)
	assert.Equal(t, domain.CategoryAll, cats[0])
	assert.Contains(t, cats, domain.CategoryFruits)
	assert.Contains(t, cats, domain.CategoryCitrus)
}

func TestGetProductDetails(t *testing.T) {
	uc := newCatalogUsecase()
	ctx := context.Background()

	product, err := uc.GetProductDetails(ctx, "apple")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, 1, product.ID)

	missing, err := uc.GetProductDetails(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
