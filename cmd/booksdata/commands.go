package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pevans/booksdata"
	"github.com/pevans/booksdata/history"
)

func handleCategories(args []string) {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	format := fs.String("format", "table", "Output format: table, json")
	fs.Parse(args)

	scraper := newScraper()
	defer scraper.Close()

	categories, err := scraper.ListCategories(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list categories: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "json":
		printJSON(categories)
	case "table":
		printCategories(categories)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format: %s\n", *format)
		os.Exit(1)
	}
}

func handleScrape(args []string) {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	category := fs.String("category", "", "Category to scrape (required)")
	format := fs.String("format", "table", "Output format: table, json")
	fs.Parse(args)

	if *category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category is required")
		fs.Usage()
		os.Exit(1)
	}

	scraper := newScraper()
	defer scraper.Close()

	records, err := scraper.Scrape(context.Background(), *category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to scrape %q: %v\n", *category, err)
		os.Exit(1)
	}

	switch *format {
	case "json":
		printJSON(records)
	case "table":
		printRecords(records)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format: %s\n", *format)
		os.Exit(1)
	}
}

func handleExport(historyPath string, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	category := fs.String("category", "", "Category to export (required)")
	format := fs.String("format", "df", "Export format: df, csv, excel")
	path := fs.String("path", "", "Destination file (required for csv and excel)")
	fs.Parse(args)

	if *category == "" {
		fmt.Fprintln(os.Stderr, "Error: -category is required")
		fs.Usage()
		os.Exit(1)
	}

	scraper := newScraper()
	defer scraper.Close()

	started := time.Now()
	tbl, err := scraper.SaveData(context.Background(), *category, booksdata.Format(*format), *path, nil)
	duration := time.Since(started)

	run := history.Run{
		Category:  *category,
		Format:    *format,
		Path:      *path,
		StartedAt: started,
		Duration:  duration,
	}
	if err != nil {
		run.Error = err.Error()
	} else if tbl != nil {
		run.RowCount = tbl.Len()
	}
	recordRun(historyPath, run)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to export %q: %v\n", *category, err)
		os.Exit(1)
	}

	if tbl != nil {
		printTable(tbl)
		return
	}

	fmt.Printf("Exported category %q to %s in %v\n", *category, *path, duration.Round(time.Millisecond))
}

// recordRun persists a run in the history database. The row count of a
// csv export is not surfaced by SaveData, so it is read back from the
// written file; failures to record are warnings only.
func recordRun(historyPath string, run history.Run) {
	store, err := history.NewStore(historyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open run history: %v\n", err)
		return
	}
	defer store.Close()

	if run.Succeeded() && run.Format == "csv" && run.RowCount == 0 {
		run.RowCount = countCSVRows(run.Path)
	}

	if _, err := store.Add(run); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record run: %v\n", err)
	}
}

func handleRuns(historyPath string, args []string) {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Maximum number of runs to display")
	format := fs.String("format", "table", "Output format: table, json")
	fs.Parse(args)

	store, err := history.NewStore(historyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.List(*limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list runs: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "json":
		printJSON(runs)
	case "table":
		printRuns(runs)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format: %s\n", *format)
		os.Exit(1)
	}
}
