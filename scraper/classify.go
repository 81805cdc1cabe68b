package scraper

import (
	"strings"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

// categoryKeywords holds the garment vocabulary per outfit slot. Order
// matters: the sets are evaluated top, bottom, shoes, accessories and the
// first match wins.
var categoryKeywords = []struct {
	category types.Category
	keywords []string
}{
	{types.CategoryTop, []string{
		"shirt", "tshirt", "t-shirt", "polo", "blouse", "top", "sweater",
		"hoodie", "jacket", "blazer", "coat", "kurta",
	}},
	{types.CategoryBottom, []string{
		"pant", "jeans", "trouser", "chino", "short", "skirt", "legging",
		"jogger", "track", "pajama",
	}},
	{types.CategoryShoes, []string{
		"shoe", "sneaker", "boot", "sandal", "slipper", "loafer", "oxford",
	}},
	{types.CategoryAccessories, []string{
		"watch", "belt", "wallet", "bag", "cap", "hat", "sunglasses",
		"tie", "bow", "scarf", "glove",
	}},
}

// DetectCategory maps a free-text product name to an outfit slot by
// case-insensitive keyword match. Names matching no vocabulary default to
// top, the most common catalog entry.
func DetectCategory(productName string) types.Category {
	name := strings.ToLower(productName)

	for _, set := range categoryKeywords {
		for _, keyword := range set.keywords {
			if strings.Contains(name, keyword) {
				return set.category
			}
		}
	}

	return types.CategoryTop
}
