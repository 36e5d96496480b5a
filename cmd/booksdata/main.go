package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pevans/booksdata"
	"github.com/pevans/booksdata/config"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	historyPath := getEnv("BOOKSDATA_HISTORY_DSN", "history.db")

	subcommand := os.Args[1]

	switch subcommand {
	case "categories":
		handleCategories(os.Args[2:])
	case "scrape":
		handleScrape(os.Args[2:])
	case "export":
		handleExport(historyPath, os.Args[2:])
	case "runs":
		handleRuns(historyPath, os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

// newScraper builds a scraper from the user's config file, falling back to
// defaults when the file is absent or broken.
func newScraper() *booksdata.BookScraper {
	cfg, err := config.LoadConfigFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
	}

	opts := &booksdata.Options{}
	if cfg != nil {
		opts.BaseURL = cfg.Scraper.BaseURL
		opts.UserAgent = cfg.Scraper.UserAgent
		opts.Headers = cfg.Scraper.Headers
		if cfg.Scraper.TimeoutSeconds > 0 {
			opts.Timeout = time.Duration(cfg.Scraper.TimeoutSeconds) * time.Second
		}
	}

	return booksdata.New(opts)
}

func printUsage() {
	fmt.Println("booksdata - Catalog scraping CLI client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  booksdata <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  categories  List the catalog's categories")
	fmt.Println("  scrape      Print raw records for a category")
	fmt.Println("  export      Export a normalized table (df, csv, excel)")
	fmt.Println("  runs        Show recorded scrape/export runs")
	fmt.Println("  help        Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  BOOKSDATA_HISTORY_DSN  Path to run history database (default: history.db)")
}
