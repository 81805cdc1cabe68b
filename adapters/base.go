package adapters

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
	"github.com/Tamil182006/AI-Stylist-manoj/utils"
)

// BaseAdapter provides the functionality shared by all site adapters:
// fetching a rendered results page, parsing it, and normalizing the raw
// values read from product cards.
type BaseAdapter struct {
	config        *types.Config
	logger        types.Logger
	httpClient    *utils.HTTPClient
	browserClient *utils.BrowserClient
}

// NewBaseAdapter creates a base adapter with initialized HTTP and browser clients.
func NewBaseAdapter(config *types.Config, logger types.Logger) *BaseAdapter {
	return &BaseAdapter{
		config:        config,
		logger:        logger,
		httpClient:    utils.NewHTTPClient(config, logger),
		browserClient: utils.NewBrowserClient(config, logger),
	}
}

// GetRenderedDocument fetches pageURL and parses it into a goquery document.
// Sites that render product grids client-side need the headless browser;
// the plain HTTP client is used when UseHeadlessBrowser is off.
func (b *BaseAdapter) GetRenderedDocument(ctx context.Context, pageURL, waitSelector string) (*goquery.Document, error) {
	if b.config.UseHeadlessBrowser {
		html, err := b.browserClient.FetchRenderedPage(ctx, pageURL, waitSelector)
		if err != nil {
			return nil, err
		}
		return goquery.NewDocumentFromReader(strings.NewReader(html))
	}

	body, err := b.httpClient.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// AbsoluteURL converts a relative or protocol-less URL read from a card into
// an absolute one against the source origin. Empty input stays empty so the
// caller can treat the field as missing.
func (b *BaseAdapter) AbsoluteURL(raw, origin string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "/"):
		return origin + raw
	case !strings.HasPrefix(raw, "http"):
		return origin + "/" + raw
	}
	return raw
}

// listingID builds a result-set-unique listing ID from the source name, the
// scrape timestamp, and the card position. IDs are not stable across runs.
func listingID(source string, scrapedAt int64, position int) string {
	return fmt.Sprintf("%s-%d-%d", strings.ToLower(source), scrapedAt, position)
}

// DisplayName joins an optional brand prefix with the item title.
func (b *BaseAdapter) DisplayName(brand, title string) string {
	return strings.TrimSpace(brand + " " + title)
}
