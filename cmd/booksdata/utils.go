package main

import (
	"encoding/csv"
	"os"
)

// countCSVRows returns the number of data rows (excluding the header) in a
// CSV file, or 0 when the file cannot be read. Used only to enrich run
// history after a csv export.
func countCSVRows(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil || len(records) == 0 {
		return 0
	}

	return len(records) - 1
}

// truncate shortens a string for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
