package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Tamil182006/AI-Stylist-manoj/adapters"
	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
	"github.com/Tamil182006/AI-Stylist-manoj/scraper"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	var (
		queryFlag    = flag.String("query", "", "Free-text search query (outfit-builder flow)")
		styleFlag    = flag.String("style", "", "Style category (photo-analysis flow, e.g. \"Formal Business Attire\")")
		colorsFlag   = flag.String("colors", "", "Comma-separated preferred colors")
		occasionFlag = flag.String("occasion", "", "Occasion label")
		genderFlag   = flag.String("gender", "men", "Target gender (men, women)")
		categoryFlag = flag.String("category", "", "Outfit slot filter (top, bottom, shoes, accessories)")
		limitFlag    = flag.Int("limit", 0, "Maximum number of results")
		sourcesFlag  = flag.String("sources", "", "Comma-separated source priority list (default: myntra,ajio)")
		outputFlag   = flag.String("output", "", "Output file path (default: stdout)")
		verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if *queryFlag == "" && *styleFlag == "" {
		log.Fatal("Either -query or -style flag is required")
	}
	if *queryFlag != "" && *styleFlag != "" {
		log.Fatal("Cannot use both -query and -style flags")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, err := logrus.ParseLevel(levelStr); err == nil {
			logger.SetLevel(level)
		}
	} else if *verboseFlag {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	config := types.DefaultConfig()
	if *sourcesFlag != "" {
		config.Sources = splitList(*sourcesFlag)
	}

	sites := adapters.FromConfig(config, logger)
	if len(sites) == 0 {
		logger.Fatal("No usable scraper sources configured")
	}
	aggregator := scraper.NewAggregator(config, logger, sites...)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var (
		products []types.ProductListing
		err      error
	)

	startTime := time.Now()
	if *queryFlag != "" {
		var category types.Category
		if *categoryFlag != "" {
			category, err = types.ParseCategory(*categoryFlag)
			if err != nil {
				logger.Fatalf("Invalid category: %v", err)
			}
		}
		products, err = aggregator.SearchByText(ctx, *queryFlag, types.OutfitOptions{
			Limit:    *limitFlag,
			Category: category,
		})
	} else {
		products, err = aggregator.SearchByStyle(ctx, *styleFlag, splitList(*colorsFlag), *occasionFlag, types.StyleOptions{
			Limit:  *limitFlag,
			Gender: *genderFlag,
		})
	}
	if err != nil {
		logger.Fatalf("Search failed: %v", err)
	}

	logger.Infof("Search completed in %v with %d products", time.Since(startTime), len(products))

	jsonData, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to marshal results: %v", err)
	}

	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, jsonData, 0644); err != nil {
			logger.Fatalf("Failed to write output file: %v", err)
		}
		logger.Infof("Results written to: %s", *outputFlag)
	} else {
		fmt.Println(string(jsonData))
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
