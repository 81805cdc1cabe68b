package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, 1920, cfg.Scraper.ViewportWidth)
	assert.Equal(t, 1080, cfg.Scraper.ViewportHeight)
	assert.Equal(t, 30*time.Second, cfg.Scraper.NavigationTimeout)
	assert.Equal(t, 10*time.Second, cfg.Scraper.SelectorTimeout)
	assert.True(t, cfg.Scraper.UseHeadlessBrowser)
	assert.Equal(t, 12, cfg.Scraper.DefaultLimit)
	assert.Equal(t, []string{"myntra", "ajio"}, cfg.Scraper.Sources)
	assert.Contains(t, cfg.Scraper.UserAgent, "Mozilla/5.0")
}

func TestScraperTypes_MapsAllFields(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	sc := cfg.ScraperTypes()
	assert.Equal(t, cfg.Scraper.UserAgent, sc.UserAgent)
	assert.Equal(t, cfg.Scraper.ViewportWidth, sc.ViewportWidth)
	assert.Equal(t, cfg.Scraper.ViewportHeight, sc.ViewportHeight)
	assert.Equal(t, cfg.Scraper.NavigationTimeout, sc.NavigationTimeout)
	assert.Equal(t, cfg.Scraper.SelectorTimeout, sc.SelectorTimeout)
	assert.Equal(t, cfg.Scraper.DefaultLimit, sc.DefaultLimit)
	assert.Equal(t, cfg.Scraper.Sources, sc.Sources)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Scraper: ScraperConfig{
				NavigationTimeout: 30 * time.Second,
				SelectorTimeout:   10 * time.Second,
				DefaultLimit:      12,
				Sources:           []string{"myntra"},
			},
		}
	}

	assert.NoError(t, validate(valid()))

	noLimit := valid()
	noLimit.Scraper.DefaultLimit = 0
	assert.Error(t, validate(noLimit))

	noTimeout := valid()
	noTimeout.Scraper.SelectorTimeout = 0
	assert.Error(t, validate(noTimeout))

	noSources := valid()
	noSources.Scraper.Sources = nil
	assert.Error(t, validate(noSources))
}
