package adapters

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

const (
	ajioSource = "Ajio"
	ajioOrigin = "https://www.ajio.com"

	ajioCardSelector = ".item"
)

// AjioAdapter extracts product listings from ajio.com search pages.
type AjioAdapter struct {
	*BaseAdapter
}

// NewAjioAdapter creates a new Ajio adapter.
func NewAjioAdapter(config *types.Config, logger types.Logger) *AjioAdapter {
	return &AjioAdapter{
		BaseAdapter: NewBaseAdapter(config, logger),
	}
}

// Name returns the source identifier.
func (a *AjioAdapter) Name() string {
	return ajioSource
}

// SearchURL builds the Ajio search page URL.
func (a *AjioAdapter) SearchURL(query string) string {
	return ajioOrigin + "/search/?text=" + url.QueryEscape(query)
}

// Search fetches the rendered search page and extracts up to limit listings.
func (a *AjioAdapter) Search(ctx context.Context, query string, limit int) ([]types.ProductListing, error) {
	a.logger.Infof("Scraping %s for %q", ajioSource, query)

	doc, err := a.GetRenderedDocument(ctx, a.SearchURL(query), ajioCardSelector)
	if err != nil {
		return nil, err
	}

	listings := a.parseSearchResults(doc, limit)
	a.logger.Infof("%s: found %d products", ajioSource, len(listings))
	return listings, nil
}

// parseSearchResults reads up to limit product cards in document order,
// dropping any card missing name, price, or image. Ajio serves
// protocol-relative image URLs, which are normalized to https.
func (a *AjioAdapter) parseSearchResults(doc *goquery.Document, limit int) []types.ProductListing {
	scrapedAt := time.Now().UnixMilli()
	var listings []types.ProductListing

	doc.Find(ajioCardSelector).EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= limit {
			return false
		}

		title := strings.TrimSpace(card.Find(".nameCls").First().Text())
		brand := strings.TrimSpace(card.Find(".brand").First().Text())
		price := strings.TrimSpace(card.Find(".price").First().Text())

		image := a.AbsoluteURL(card.Find("img").First().AttrOr("src", ""), ajioOrigin)
		link := a.AbsoluteURL(card.Find("a").First().AttrOr("href", ""), ajioOrigin)

		if title == "" || price == "" || image == "" {
			return true
		}

		listings = append(listings, types.ProductListing{
			ID:       listingID(ajioSource, scrapedAt, i),
			Name:     a.DisplayName(brand, title),
			Brand:    brand,
			Price:    price,
			ImageURL: image,
			BuyLink:  link,
			Category: types.CategoryTop,
			Source:   ajioSource,
		})
		return true
	})

	return listings
}
