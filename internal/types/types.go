package types

import (
	"context"
	"fmt"
	"time"
)

// Category is one of the four outfit slots a saved outfit fills.
type Category string

const (
	CategoryTop         Category = "top"
	CategoryBottom      Category = "bottom"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// Valid reports whether c is one of the four known outfit slots.
func (c Category) Valid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryShoes, CategoryAccessories:
		return true
	}
	return false
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// ProductListing is the canonical product record emitted by every source,
// live or synthetic. Prices keep the source currency formatting as-is.
type ProductListing struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand,omitempty"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Discount      string   `json:"discount,omitempty"`
	ImageURL      string   `json:"image"`
	BuyLink       string   `json:"buyLink,omitempty"`
	Category      Category `json:"category"`
	Source        string   `json:"source"`
}

// StyleOptions tunes a style-driven search from the photo-analysis flow.
type StyleOptions struct {
	Limit   int
	Gender  string
	Sources []string
}

// OutfitOptions tunes a free-text search from the outfit-builder flow.
// An empty Category means no filtering.
type OutfitOptions struct {
	Limit    int
	Category Category
}

// SiteAdapter defines the interface for source-specific extraction logic.
// Search reads up to limit product cards from the source's search results
// page in document order. Cards missing required fields are dropped, so
// fewer than limit items may come back.
type SiteAdapter interface {
	// Name returns the source identifier stamped on every listing.
	Name() string

	// Search fetches the rendered results page for query and extracts listings.
	Search(ctx context.Context, query string, limit int) ([]ProductListing, error)
}

// Config holds the scraping configuration shared by the page fetcher and
// the site adapters. The browser identity fields are constant across calls
// to present a consistent fingerprint.
type Config struct {
	UserAgent          string
	ViewportWidth      int
	ViewportHeight     int
	NavigationTimeout  time.Duration
	SelectorTimeout    time.Duration
	RequestsPerSecond  float64
	RequestBurst       int
	UseHeadlessBrowser bool
	DefaultLimit       int
	Sources            []string
}

// DefaultConfig returns the default scraping configuration.
func DefaultConfig() *Config {
	return &Config{
		UserAgent:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		ViewportWidth:      1920,
		ViewportHeight:     1080,
		NavigationTimeout:  30 * time.Second,
		SelectorTimeout:    10 * time.Second,
		RequestsPerSecond:  0.5,
		RequestBurst:       2,
		UseHeadlessBrowser: true,
		DefaultLimit:       12,
		Sources:            []string{"myntra", "ajio"},
	}
}

// Logger defines the logging interface.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
