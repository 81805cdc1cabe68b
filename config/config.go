package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Scraper ScraperConfig `mapstructure:"scraper"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScraperConfig holds the product discovery configuration.
type ScraperConfig struct {
	UserAgent          string        `mapstructure:"user_agent"`
	ViewportWidth      int           `mapstructure:"viewport_width"`
	ViewportHeight     int           `mapstructure:"viewport_height"`
	NavigationTimeout  time.Duration `mapstructure:"navigation_timeout"`
	SelectorTimeout    time.Duration `mapstructure:"selector_timeout"`
	RequestsPerSecond  float64       `mapstructure:"requests_per_second"`
	RequestBurst       int           `mapstructure:"request_burst"`
	UseHeadlessBrowser bool          `mapstructure:"use_headless_browser"`
	DefaultLimit       int           `mapstructure:"default_limit"`
	Sources            []string      `mapstructure:"sources"`
}

// Load loads configuration from environment variables and an optional
// config file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ai-stylist/")

	v.SetEnvPrefix("STYLIST")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; environment variables and defaults apply
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	defaults := types.DefaultConfig()
	v.SetDefault("scraper.user_agent", defaults.UserAgent)
	v.SetDefault("scraper.viewport_width", defaults.ViewportWidth)
	v.SetDefault("scraper.viewport_height", defaults.ViewportHeight)
	v.SetDefault("scraper.navigation_timeout", defaults.NavigationTimeout)
	v.SetDefault("scraper.selector_timeout", defaults.SelectorTimeout)
	v.SetDefault("scraper.requests_per_second", defaults.RequestsPerSecond)
	v.SetDefault("scraper.request_burst", defaults.RequestBurst)
	v.SetDefault("scraper.use_headless_browser", defaults.UseHeadlessBrowser)
	v.SetDefault("scraper.default_limit", defaults.DefaultLimit)
	v.SetDefault("scraper.sources", defaults.Sources)
}

// validate validates the configuration.
func validate(config *Config) error {
	if config.Scraper.DefaultLimit <= 0 {
		return fmt.Errorf("scraper default_limit must be positive, got: %d", config.Scraper.DefaultLimit)
	}
	if config.Scraper.NavigationTimeout <= 0 || config.Scraper.SelectorTimeout <= 0 {
		return fmt.Errorf("scraper timeouts must be positive")
	}
	if len(config.Scraper.Sources) == 0 {
		return fmt.Errorf("at least one scraper source is required")
	}
	return nil
}

// ScraperTypes maps the scraper section onto the config value the page
// fetcher and site adapters consume.
func (c *Config) ScraperTypes() *types.Config {
	return &types.Config{
		UserAgent:          c.Scraper.UserAgent,
		ViewportWidth:      c.Scraper.ViewportWidth,
		ViewportHeight:     c.Scraper.ViewportHeight,
		NavigationTimeout:  c.Scraper.NavigationTimeout,
		SelectorTimeout:    c.Scraper.SelectorTimeout,
		RequestsPerSecond:  c.Scraper.RequestsPerSecond,
		RequestBurst:       c.Scraper.RequestBurst,
		UseHeadlessBrowser: c.Scraper.UseHeadlessBrowser,
		DefaultLimit:       c.Scraper.DefaultLimit,
		Sources:            c.Scraper.Sources,
	}
}
