package adapters

import (
	"strings"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

// ForSource creates the adapter for a source name. The second return is
// false for names with no registered adapter.
func ForSource(name string, config *types.Config, logger types.Logger) (types.SiteAdapter, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "myntra", "myntra.com":
		return NewMyntraAdapter(config, logger), true
	case "ajio", "ajio.com":
		return NewAjioAdapter(config, logger), true
	default:
		return nil, false
	}
}

// FromConfig builds the adapter list in the priority order configured in
// config.Sources. Unknown source names are logged and skipped.
func FromConfig(config *types.Config, logger types.Logger) []types.SiteAdapter {
	var sites []types.SiteAdapter
	for _, name := range config.Sources {
		site, ok := ForSource(name, config, logger)
		if !ok {
			logger.Warnf("Unknown source: %s, skipping", name)
			continue
		}
		sites = append(sites, site)
	}
	return sites
}
