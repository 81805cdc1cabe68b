package adapters

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

const (
	myntraSource = "Myntra"
	myntraOrigin = "https://www.myntra.com"

	// Myntra renders its product grid client-side; this marker shows up
	// once the grid is in the DOM.
	myntraCardSelector = ".product-base"
)

// MyntraAdapter extracts product listings from myntra.com search pages.
type MyntraAdapter struct {
	*BaseAdapter
}

// NewMyntraAdapter creates a new Myntra adapter.
func NewMyntraAdapter(config *types.Config, logger types.Logger) *MyntraAdapter {
	return &MyntraAdapter{
		BaseAdapter: NewBaseAdapter(config, logger),
	}
}

// Name returns the source identifier.
func (m *MyntraAdapter) Name() string {
	return myntraSource
}

// SearchURL builds the Myntra search page URL. Myntra encodes the query in
// the path, lowercased with spaces collapsed to dashes.
func (m *MyntraAdapter) SearchURL(query string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(query)), "-")
	return myntraOrigin + "/" + slug
}

// Search fetches the rendered search page and extracts up to limit listings.
func (m *MyntraAdapter) Search(ctx context.Context, query string, limit int) ([]types.ProductListing, error) {
	m.logger.Infof("Scraping %s for %q", myntraSource, query)

	doc, err := m.GetRenderedDocument(ctx, m.SearchURL(query), myntraCardSelector)
	if err != nil {
		return nil, err
	}

	listings := m.parseSearchResults(doc, limit)
	m.logger.Infof("%s: found %d products", myntraSource, len(listings))
	return listings, nil
}

// parseSearchResults reads up to limit product cards in document order.
// A card missing name, price, or image is dropped without widening the
// scanned window.
func (m *MyntraAdapter) parseSearchResults(doc *goquery.Document, limit int) []types.ProductListing {
	scrapedAt := time.Now().UnixMilli()
	var listings []types.ProductListing

	doc.Find(myntraCardSelector).EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= limit {
			return false
		}

		title := strings.TrimSpace(card.Find(".product-product").First().Text())
		brand := strings.TrimSpace(card.Find(".product-brand").First().Text())
		price := strings.TrimSpace(card.Find(".product-discountedPrice").First().Text())
		originalPrice := strings.TrimSpace(card.Find(".product-strike").First().Text())
		discount := strings.TrimSpace(card.Find(".product-discountPercentage").First().Text())

		img := card.Find("img").First()
		image := img.AttrOr("src", "")
		if image == "" {
			// Lazy-loaded cards carry the URL in data-src until scrolled into view
			image = img.AttrOr("data-src", "")
		}
		image = m.AbsoluteURL(image, myntraOrigin)
		link := m.AbsoluteURL(card.Find("a").First().AttrOr("href", ""), myntraOrigin)

		if title == "" || price == "" || image == "" {
			return true
		}

		listings = append(listings, types.ProductListing{
			ID:            listingID(myntraSource, scrapedAt, i),
			Name:          m.DisplayName(brand, title),
			Brand:         brand,
			Price:         price,
			OriginalPrice: originalPrice,
			Discount:      discount,
			ImageURL:      image,
			BuyLink:       link,
			Category:      types.CategoryTop,
			Source:        myntraSource,
		})
		return true
	})

	return listings
}
