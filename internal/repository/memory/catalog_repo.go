package memory

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"fruitmart-backend/internal/domain"
)

// CatalogRepository is the immutable in-process product store. Products are
// fixed at construction; every read works on copies of the seeded slice.
type CatalogRepository struct {
	products   []domain.Product
	byID       map[int]domain.Product
	bySlug     map[string]domain.Product
	categories []string
}

func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	repo := &CatalogRepository{
		products: products,
		byID:     make(map[int]domain.Product, len(products)),
		bySlug:   make(map[string]domain.Product, len(products)),
	}

	seen := make(map[string]bool)
	for _, p := range products {
		repo.byID[p.ID] = p
		repo.bySlug[p.Slug] = p
		if !seen[p.Category] {
			seen[p.Category] = true
			repo.categories = append(repo.categories, p.Category)
		}
	}

	return repo
}

// GetProducts applies the category and search predicates, stable-sorts the
// survivors, and slices out the requested page. Unrecognized category or
// sort values fall back to "all" / catalog order instead of erroring.
func (r *CatalogRepository) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	filtered := r.filter(filter.Category, filter.Query)
	sortProducts(filtered, filter.Sort)

	total := int64(len(filtered))

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(filtered) {
		return []domain.Product{}, total, nil
	}
	end := len(filtered)
	if filter.Limit > 0 && offset+filter.Limit < end {
		end = offset + filter.Limit
	}

	return filtered[offset:end], total, nil
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *CatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetCategories returns the distinct categories in catalog insertion order.
func (r *CatalogRepository) GetCategories(ctx context.Context) ([]string, error) {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *CatalogRepository) filter(category, query string) []domain.Product {
	filterCategory := category != "" && category != domain.CategoryAll && r.knownCategory(category)
	needle := strings.ToLower(query)

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filterCategory && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *CatalogRepository) knownCategory(category string) bool {
	for _, c := range r.categories {
		if c == category {
			return true
		}
	}
	return false
}

// sortProducts reorders in place. Stability matters: products with equal
// keys keep their catalog order, so every comparator is strict.
func sortProducts(products []domain.Product, option string) {
	switch option {
	case domain.SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortNameAZ:
		c := newNameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case domain.SortNameZA:
		c := newNameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) > 0
		})
	case domain.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// catalog insertion order, including unknown sort options
	}
}

// newNameCollator builds a locale-aware comparator per sort pass; a Collator
// carries internal buffers and must not be shared across goroutines.
func newNameCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}
