package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

// Aggregator orchestrates product discovery across the configured sources.
// Sources are visited sequentially in priority order: each one spawns its
// own heavyweight browser session, so concurrent sessions are avoided
// deliberately. A failing source never aborts the sequence, and when every
// source comes back empty the synthetic catalog stands in so the caller's
// UI is never empty.
type Aggregator struct {
	config *types.Config
	logger types.Logger
	sites  []types.SiteAdapter
}

// NewAggregator creates an aggregator over the given adapters. The adapter
// order is the source priority order.
func NewAggregator(config *types.Config, logger types.Logger, sites ...types.SiteAdapter) *Aggregator {
	return &Aggregator{
		config: config,
		logger: logger,
		sites:  sites,
	}
}

// SearchByStyle runs a style-driven search for the photo-analysis flow.
// The style category, preferred colors, and occasion are folded into one
// query via BuildSearchQuery, then the sources are scraped in priority
// order until opts.Limit items accumulate or the sources run out.
func (a *Aggregator) SearchByStyle(ctx context.Context, styleCategory string, colors []string, occasion string, opts types.StyleOptions) ([]types.ProductListing, error) {
	limit := a.resolveLimit(opts.Limit)

	query := applyGender(BuildSearchQuery(styleCategory, colors, occasion), opts.Gender)
	a.logger.Infof("Style search: style=%q colors=%v occasion=%q query=%q limit=%d",
		styleCategory, colors, occasion, query, limit)

	accumulated := a.collect(ctx, query, limit, opts.Sources)

	// Extractors tag a provisional category; only unset ones need classifying here
	for i := range accumulated {
		if accumulated[i].Category == "" {
			accumulated[i].Category = DetectCategory(accumulated[i].Name)
		}
	}

	if len(accumulated) == 0 {
		a.logger.Warn("All sources empty, falling back to synthetic catalog")
		return truncate(StyleFallback(styleCategory, colors), limit), nil
	}

	return truncate(accumulated, limit), nil
}

// SearchByText runs a free-text search for the outfit-builder flow. Every
// extracted item is re-classified from its name; when opts.Category is set
// the results are filtered down to that single outfit slot.
func (a *Aggregator) SearchByText(ctx context.Context, query string, opts types.OutfitOptions) ([]types.ProductListing, error) {
	if strings.TrimSpace(query) == "" {
		return nil, types.ErrInvalidQuery
	}
	if opts.Category != "" && !opts.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidCategory, opts.Category)
	}
	limit := a.resolveLimit(opts.Limit)

	a.logger.Infof("Outfit search: query=%q category=%q limit=%d", query, opts.Category, limit)

	accumulated := a.collect(ctx, query, limit, nil)

	classified := accumulated[:0]
	for _, item := range accumulated {
		item.Category = DetectCategory(item.Name)
		if opts.Category != "" && item.Category != opts.Category {
			continue
		}
		classified = append(classified, item)
	}

	if len(classified) == 0 {
		a.logger.Warn("All sources empty, falling back to synthetic catalog")
		return truncate(OutfitFallback(opts.Category), limit), nil
	}

	return truncate(classified, limit), nil
}

// collect walks the sources in priority order, asking each for the items
// still missing. An error from one source is folded into an empty result
// and the walk continues. No retries, no cross-call caching.
func (a *Aggregator) collect(ctx context.Context, query string, limit int, sources []string) []types.ProductListing {
	var accumulated []types.ProductListing

	for _, site := range a.selectSites(sources) {
		remaining := limit - len(accumulated)
		if remaining <= 0 {
			break
		}

		items, err := site.Search(ctx, query, remaining)
		if err != nil {
			a.logger.Warnf("%s failed, continuing: %v", site.Name(), err)
			continue
		}

		a.logger.Infof("%s contributed %d items (%d accumulated)", site.Name(), len(items), len(accumulated)+len(items))
		accumulated = append(accumulated, items...)
	}

	return accumulated
}

// selectSites filters the priority-ordered adapter list down to the
// requested source names. An empty request keeps the full list; unknown
// names are logged and skipped.
func (a *Aggregator) selectSites(sources []string) []types.SiteAdapter {
	if len(sources) == 0 {
		return a.sites
	}

	var selected []types.SiteAdapter
	for _, name := range sources {
		found := false
		for _, site := range a.sites {
			if strings.EqualFold(site.Name(), strings.TrimSpace(name)) {
				selected = append(selected, site)
				found = true
				break
			}
		}
		if !found {
			a.logger.Warnf("Unknown source: %s, skipping", name)
		}
	}
	return selected
}

func (a *Aggregator) resolveLimit(limit int) int {
	if limit <= 0 {
		return a.config.DefaultLimit
	}
	return limit
}

func truncate(items []types.ProductListing, limit int) []types.ProductListing {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
