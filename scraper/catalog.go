package scraper

import (
	"fmt"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

// syntheticSource tags fallback listings so the UI can surface that live
// scraping yielded nothing.
const syntheticSource = "synthetic"

// StyleFallback returns a small templated product set for the style-driven
// flow when every live source came back empty. Shaped identically to live
// results so downstream consumers are unaffected.
func StyleFallback(styleCategory string, colors []string) []types.ProductListing {
	primary := colorAt(colors, 0, "Blue")
	secondary := colorAt(colors, 1, "Grey")

	return []types.ProductListing{
		{
			ID:       "synthetic-1",
			Name:     fmt.Sprintf("%s %s Shirt", primary, styleCategory),
			Brand:    "Generic Brand",
			Price:    "₹1,299",
			ImageURL: "https://via.placeholder.com/300x400?text=Product+1",
			BuyLink:  "https://www.myntra.com",
			Category: types.CategoryTop,
			Source:   syntheticSource,
		},
		{
			ID:       "synthetic-2",
			Name:     fmt.Sprintf("%s Premium Blazer", secondary),
			Brand:    "Generic Brand",
			Price:    "₹3,499",
			ImageURL: "https://via.placeholder.com/300x400?text=Product+2",
			BuyLink:  "https://www.myntra.com",
			Category: types.CategoryTop,
			Source:   syntheticSource,
		},
		{
			ID:       "synthetic-3",
			Name:     fmt.Sprintf("%s Formal Trousers", primary),
			Brand:    "Generic Brand",
			Price:    "₹1,799",
			ImageURL: "https://via.placeholder.com/300x400?text=Product+3",
			BuyLink:  "https://www.myntra.com",
			Category: types.CategoryBottom,
			Source:   syntheticSource,
		},
	}
}

// outfitCatalog spans all four outfit slots so the outfit builder stays
// usable with no network connectivity at all.
var outfitCatalog = []types.ProductListing{
	{
		ID:       "synthetic-top-1",
		Name:     "Blue Formal Shirt",
		Brand:    "Peter England",
		Price:    "₹1,299",
		ImageURL: "https://via.placeholder.com/300x400/4A90E2/FFFFFF?text=Blue+Shirt",
		BuyLink:  "https://www.myntra.com",
		Category: types.CategoryTop,
		Source:   syntheticSource,
	},
	{
		ID:       "synthetic-top-2",
		Name:     "White Casual Shirt",
		Brand:    "Allen Solly",
		Price:    "₹999",
		ImageURL: "https://via.placeholder.com/300x400/FFFFFF/000000?text=White+Shirt",
		BuyLink:  "https://www.myntra.com",
		Category: types.CategoryTop,
		Source:   syntheticSource,
	},
	{
		ID:       "synthetic-bottom-1",
		Name:     "Black Formal Trousers",
		Brand:    "Louis Philippe",
		Price:    "₹1,799",
		ImageURL: "https://via.placeholder.com/300x400/000000/FFFFFF?text=Black+Pants",
		BuyLink:  "https://www.myntra.com",
		Category: types.CategoryBottom,
		Source:   syntheticSource,
	},
	{
		ID:       "synthetic-bottom-2",
		Name:     "Cream Chinos",
		Brand:    "US Polo",
		Price:    "₹1,499",
		ImageURL: "https://via.placeholder.com/300x400/F5DEB3/000000?text=Cream+Chinos",
		BuyLink:  "https://www.myntra.com",
		Category: types.CategoryBottom,
		Source:   syntheticSource,
	},
	{
		ID:       "synthetic-shoes-1",
		Name:     "Brown Leather Shoes",
		Brand:    "Clarks",
		Price:    "₹3,999",
		ImageURL: "https://via.placeholder.com/300x400/8B4513/FFFFFF?text=Brown+Shoes",
		BuyLink:  "https://www.myntra.com",
		Category: types.CategoryShoes,
		Source:   syntheticSource,
	},
	{
		ID:       "synthetic-shoes-2",
		Name:     "White Sneakers",
		Brand:    "Nike",
		Price:    "₹4,999",
		ImageURL: "https://via.placeholder.com/300x400/FFFFFF/000000?text=White+Sneakers",
		BuyLink:  "https://www.myntra.com",
		Category: types.CategoryShoes,
		Source:   syntheticSource,
	},
	{
		ID:       "synthetic-acc-1",
		Name:     "Silver Watch",
		Brand:    "Titan",
		Price:    "₹5,999",
		ImageURL: "https://via.placeholder.com/300x400/C0C0C0/000000?text=Silver+Watch",
		BuyLink:  "https://www.myntra.com",
		Category: types.CategoryAccessories,
		Source:   syntheticSource,
	},
	{
		ID:       "synthetic-acc-2",
		Name:     "Leather Belt",
		Brand:    "Woodland",
		Price:    "₹899",
		ImageURL: "https://via.placeholder.com/300x400/654321/FFFFFF?text=Leather+Belt",
		BuyLink:  "https://www.myntra.com",
		Category: types.CategoryAccessories,
		Source:   syntheticSource,
	},
}

// OutfitFallback returns the fixed category-complete product set for the
// outfit-builder flow, optionally filtered to a single slot. The returned
// slice is a copy; callers may mutate it freely.
func OutfitFallback(category types.Category) []types.ProductListing {
	var items []types.ProductListing
	for _, item := range outfitCatalog {
		if category != "" && item.Category != category {
			continue
		}
		items = append(items, item)
	}
	return items
}

func colorAt(colors []string, i int, fallback string) string {
	if i < len(colors) && colors[i] != "" {
		return colors[i]
	}
	return fallback
}
