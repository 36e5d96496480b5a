package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pevans/booksdata"
	"github.com/pevans/booksdata/history"
	"github.com/pevans/booksdata/table"
)

// printJSON prints any value as indented JSON.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

// printCategories prints categories in human-readable table format.
func printCategories(categories []booksdata.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}

	fmt.Printf("%-30s %s\n", "NAME", "PATH")
	for _, category := range categories {
		fmt.Printf("%-30s %s\n", category.Name, category.Path)
	}
	fmt.Printf("\n%d categories\n", len(categories))
}

// printRecords prints raw records in human-readable format, one block per
// product, in scrape order.
func printRecords(records []booksdata.Record) {
	if len(records) == 0 {
		fmt.Println("No records to display.")
		return
	}

	for i, record := range records {
		fmt.Printf("%d. %s\n", i+1, record["Product name"])
		for _, column := range booksdata.Columns {
			if column == "Product name" {
				continue
			}
			if value, ok := record[column]; ok {
				fmt.Printf("   %s: %s\n", column, value)
			}
		}
		fmt.Println()
	}

	fmt.Printf("%d records\n", len(records))
}

// printTable prints a normalized table with one block per row, mirroring
// the record display.
func printTable(tbl *table.Table) {
	if tbl.IsEmpty() {
		fmt.Println("No rows to display.")
		return
	}

	columns := tbl.Columns()
	for i := 0; i < tbl.Len(); i++ {
		row := tbl.Row(i)
		fmt.Printf("%d.\n", i+1)
		for j, column := range columns {
			fmt.Printf("   %s: %s\n", column, table.CellString(row[j]))
		}
		fmt.Println()
	}

	fmt.Printf("%d rows\n", tbl.Len())
}

// printRuns prints recorded runs in human-readable table format.
func printRuns(runs []history.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return
	}

	fmt.Printf("%-10s %-20s %-6s %6s %-20s %-10s %s\n",
		"RUN", "CATEGORY", "FORMAT", "ROWS", "STARTED", "DURATION", "STATUS")
	for _, run := range runs {
		status := "ok"
		if !run.Succeeded() {
			status = truncate(run.Error, 40)
		}

		fmt.Printf("%-10s %-20s %-6s %6d %-20s %-10s %s\n",
			truncate(run.RunID.String(), 10),
			truncate(run.Category, 20),
			run.Format,
			run.RowCount,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Duration.Round(time.Millisecond),
			status,
		)
	}
}
