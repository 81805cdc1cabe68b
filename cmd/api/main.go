package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Tamil182006/AI-Stylist-manoj/adapters"
	"github.com/Tamil182006/AI-Stylist-manoj/api"
	"github.com/Tamil182006/AI-Stylist-manoj/config"
	"github.com/Tamil182006/AI-Stylist-manoj/scraper"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Infof("Starting AI Stylist backend")
	logger.Infof("Environment: %s", cfg.Server.Environment)
	logger.Infof("Sources: %v", cfg.Scraper.Sources)

	scraperCfg := cfg.ScraperTypes()
	sites := adapters.FromConfig(scraperCfg, logger)
	if len(sites) == 0 {
		logger.Fatal("No usable scraper sources configured")
	}

	aggregator := scraper.NewAggregator(scraperCfg, logger, sites...)
	handler := api.NewHandler(aggregator, logger)
	router := api.NewRouter(cfg, handler, logger)

	addr := ":" + cfg.Server.Port
	logger.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, err := logrus.ParseLevel(levelStr); err == nil {
			logger.SetLevel(level)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
