package memory

import (
	"fmt"
	"math"
	"math/rand"

	"fruitmart-backend/internal/domain"
	"fruitmart-backend/pkg/utils"
)

var baseNames = []string{
	"Apple", "Banana", "Orange", "Grapes", "Strawberry", "Mango", "Pineapple",
	"Blueberry", "Watermelon", "Papaya", "Guava", "Kiwi", "Lemon", "Lime",
	"Cherry", "Apricot", "Plum", "Peach", "Raspberry", "Blackberry", "Cantaloupe",
	"Honeydew", "Lychee", "Dragonfruit", "Passion Fruit", "Fig", "Date", "Cranberry",
	"Gooseberry", "Persimmon", "Tamarind", "Starfruit", "Durian", "Jackfruit", "Custard Apple",
}

var origins = []string{"Kenya", "Uganda", "Tanzania", "Ethiopia", "Malawi", "Zambia"}

var seasonalities = []string{"Year-round", "Seasonal - Dry Season", "Seasonal - Wet Season"}

var vitamins = []string{"Vitamin C", "Vitamin A", "Potassium", "Folate"}

// SeedCatalog generates a synthetic product set of the given size. The same
// seed always yields the same catalog, so restarts serve identical data and
// tests can pin expectations.
func SeedCatalog(size int, seed int64) []domain.Product {
	rng := rand.New(rand.NewSource(seed))

	products := make([]domain.Product, 0, size)
	for i := 1; i <= size; i++ {
		name := baseNames[i%len(baseNames)]
		if i > 20 {
			name = fmt.Sprintf("%s Variety %d", name, i)
		}

		price := float64(rng.Intn(60) + 10)
		category := domain.Categories[rng.Intn(len(domain.Categories))]

		products = append(products, domain.Product{
			ID:          i,
			Name:        name,
			Slug:        utils.GenerateSlug(name),
			Category:    category,
			Price:       price,
			Stock:       rng.Intn(50) + 50,
			Rating:      math.Floor(rng.Float64()*5*10) / 10,
			Reviews:     rng.Intn(500) + 100,
			Origin:      origins[rng.Intn(len(origins))],
			Seasonality: seasonalities[rng.Intn(len(seasonalities))],
			Nutrition: domain.Nutrition{
				Calories: rng.Intn(100) + 20,
				Vitamins: vitamins[rng.Intn(len(vitamins))],
				Fiber:    rng.Intn(5) + 2,
				Sugar:    rng.Intn(15) + 5,
			},
			Image:       fmt.Sprintf("https://picsum.photos/seed/%d/300/300", i),
			Description: fmt.Sprintf("Fresh and delicious %s harvested at peak ripeness. Perfect for snacking, cooking, or adding to your favorite recipes.", name),
		})
	}

	return products
}
