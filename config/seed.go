package config

import (
	"fmt"

	"business-service/models"

	"gorm.io/gorm"
)

var cuisineCatalogue = map[string][]string{
	"Cuisines": {
		"American", "Asian", "Chinese", "Filipino", "Indian", "Italian",
		"Japanese", "Korean", "Middle Eastern", "Thai", "Western",
	},
	"Main Dishes": {
		"BBQ", "Biryani", "Bulalo", "Burgers", "Chicken", "Chicken Wings",
		"Curry", "Dim Sum", "Dumpling", "Fried Chicken", "Halo-Halo",
		"Kare Kare", "Lechon", "Liempo", "Lomi", "Noodles", "Pancit", "Pares",
		"Pasta", "Pizza", "Rice Bowl", "Rice Dishes", "Rice Noodles",
		"Sinigang", "Sisig", "Ulam",
	},
	"Snacks & Sides": {
		"Bread", "Corndogs", "Fries", "Fruit Shake", "Ice Cream", "Milk Tea",
		"Salads", "Sandwiches", "Seafood", "Shawarma", "Silog", "Snacks",
		"Soups", "Takoyaki", "Wraps",
	},
	"Desserts":  {"Cakes", "Desserts", "Donut", "Fast Food"},
	"Beverages": {"Beverages", "Coffee", "Fruit Shake", "Milk Tea"},
	"Fast Food": {"Fast Food", "Burgers", "Corndogs", "Fries"},
}

// categoryOrder keeps seeded ids stable between runs
var categoryOrder = []string{"Cuisines", "Main Dishes", "Snacks & Sides", "Desserts", "Beverages", "Fast Food"}

// SeedCategories fills cuisine_category when it is empty. It returns the
// number of rows inserted.
func SeedCategories(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.CuisineCategory{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count cuisine categories: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	var rows []models.CuisineCategory
	for _, categoryType := range categoryOrder {
		for _, name := range cuisineCatalogue[categoryType] {
			rows = append(rows, models.CuisineCategory{CategoryType: categoryType, Name: name})
		}
	}
	if err := db.CreateInBatches(&rows, 100).Error; err != nil {
		return 0, fmt.Errorf("seed cuisine categories: %w", err)
	}
	return len(rows), nil
}
