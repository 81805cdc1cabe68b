package scraper

import "strings"

// styleQueries maps the coarse wardrobe-style labels produced by the
// photo-analysis flow to base garment search phrases.
var styleQueries = map[string]string{
	"Formal Business Attire": "formal shirt men",
	"Smart Casual":           "casual shirt men",
	"Casual Streetwear":      "tshirt men",
	"Party Evening Wear":     "party shirt men",
	"Traditional Ethnic":     "kurta men",
	"Sporty Athletic":        "sports tshirt men",
}

const genericQuery = "shirt men"

// BuildSearchQuery turns a style category, preferred colors, and occasion
// into a plain-text search query for the source sites. Deterministic, no
// I/O. Unknown style categories fall back to the generic phrase; the first
// preferred color, lowercased, is prepended when present.
func BuildSearchQuery(styleCategory string, colors []string, occasion string) string {
	base, ok := styleQueries[styleCategory]
	if !ok {
		base = genericQuery
	}

	if len(colors) > 0 && strings.TrimSpace(colors[0]) != "" {
		return strings.ToLower(strings.TrimSpace(colors[0])) + " " + base
	}
	return base
}

// applyGender swaps the gendered suffix of a base query phrase. The style
// query table is phrased for men; callers searching for women's wear get
// the same phrase with the suffix flipped.
func applyGender(query, gender string) string {
	if strings.EqualFold(strings.TrimSpace(gender), "women") && strings.HasSuffix(query, " men") {
		return strings.TrimSuffix(query, " men") + " women"
	}
	return query
}
