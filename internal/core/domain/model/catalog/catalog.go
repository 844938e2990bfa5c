// Package catalog provides the static product catalog presented on the order
// form. Products are configuration data, not domain state: prices are display
// labels and are never parsed or computed on.
package catalog

import (
	"universestore/internal/pkg/errs"
)

// Product is one entry of the static catalog.
type Product struct {
	Name        string
	Description string
	Price       string
	Emoji       string
}

// CustomProductName is the catalog entry that lets the customer describe
// their own desire instead of picking a bestseller.
const CustomProductName = "🎯 Custom order"

// Products returns the full static catalog in display order.
// The last entry is the custom-order placeholder.
func Products() []Product {
	return []Product{
		{
			Name:        "💰 Monthly income of 10 million",
			Description: "Steady cash flow | ⭐⭐⭐⭐⭐ (9,847 reviews)",
			Price:       "unshakable faith",
			Emoji:       "💰",
		},
		{
			Name:        "❤️ Romance with your ideal type",
			Description: "A soul partner | ⭐⭐⭐⭐⭐ (7,231 reviews)",
			Price:       "self-love",
			Emoji:       "❤️",
		},
		{
			Name:        "💪 A healthy body",
			Description: "A life full of energy | ⭐⭐⭐⭐⭐ (12,441 reviews)",
			Price:       "self-respect",
			Emoji:       "💪",
		},
		{
			Name:        "🏠 Dream home",
			Description: "The perfect space | ⭐⭐⭐⭐⭐ (5,392 reviews)",
			Price:       "inner peace",
			Emoji:       "🏠",
		},
		{
			Name:        "✈️ A life of free travel",
			Description: "Freedom of time and finances | ⭐⭐⭐⭐⭐ (8,129 reviews)",
			Price:       "expanding belief",
			Emoji:       "✈️",
		},
		{
			Name:        CustomProductName,
			Description: "Order exactly what you want",
			Price:       "custom price",
			Emoji:       "🎯",
		},
	}
}

// FindProduct looks up a catalog product by name.
func FindProduct(name string) (Product, error) {
	for _, p := range Products() {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, errs.NewObjectNotFoundError("productName", name)
}
