package domain

import (
	"context"
	"errors"
)

// ErrProductNotFound marks caller references to ids outside the catalog.
// Engine state never changes when it is returned.
var ErrProductNotFound = errors.New("product not found")

// Product Categories
const (
	CategoryAll      = "all"
	CategoryFruits   = "Fruits"
	CategoryCitrus   = "Citrus"
	CategoryBerries  = "Berries"
	CategoryTropical = "Tropical"
	CategoryExotic   = "Exotic"
)

// List Exports for API
var Categories = []string{
	CategoryFruits,
	CategoryCitrus,
	CategoryBerries,
	CategoryTropical,
	CategoryExotic,
}

// Sort Options
const (
	SortDefault      = "default"
	SortPriceLowHigh = "price-low-high"
	SortPriceHighLow = "price-high-low"
	SortNameAZ       = "name-a-z"
	SortNameZA       = "name-z-a"
	SortRatingDesc   = "rating-desc"
)

var SortOptions = []string{
	SortDefault,
	SortPriceLowHigh,
	SortPriceHighLow,
	SortNameAZ,
	SortNameZA,
	SortRatingDesc,
}

type Nutrition struct {
	Calories int    `json:"calories"` // kcal per 100g
	Vitamins string `json:"vitamins"`
	Fiber    int    `json:"fiber"`
	Sugar    int    `json:"sugar"`
}

// Product is immutable once the catalog is seeded.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"` // 0.0 - 5.0
	Reviews     int       `json:"reviews"`
	Origin      string    `json:"origin"`
	Seasonality string    `json:"seasonality"`
	Nutrition   Nutrition `json:"nutrition"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
}

// InStock reports whether the product can be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}

type ProductFilter struct {
	Category string
	Query    string
	Sort     string // one of SortOptions; unknown values behave as default
	Limit    int
	Offset   int
}

// --- Interfaces ---

type CatalogRepository interface {
	GetProducts(ctx context.Context, filter ProductFilter) ([]Product, int64, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	GetCategories(ctx context.Context) ([]string, error)
}
