package booksdata

import (
	"context"
	"fmt"
	"log"

	"github.com/pevans/booksdata/table"
)

// Format selects the output representation of SaveData.
type Format string

// Recognized output formats. Anything else fails with
// ErrUnsupportedFormat.
const (
	// FormatDF returns the normalized table in memory; nothing is written.
	FormatDF Format = "df"
	// FormatCSV writes the normalized table as comma-separated text.
	FormatCSV Format = "csv"
	// FormatExcel writes the normalized table as a single-sheet XLSX file.
	FormatExcel Format = "excel"
)

// requiresPath reports whether the format writes to a file.
func (f Format) requiresPath() bool {
	return f == FormatCSV || f == FormatExcel
}

// SaveData scrapes the given category, normalizes the records per opts
// (nil means DefaultSaveOptions), and renders the result. For FormatDF the
// table is returned and path is ignored; for FormatCSV and FormatExcel the
// table is written to path and the returned table is nil. Rows correspond
// 1:1, in order, with the records Scrape returns.
//
// Argument validation happens before any network traffic: an unrecognized
// format fails with ErrUnsupportedFormat regardless of path, and a
// file-writing format without a path fails with ErrMissingPath. Scrape
// failures propagate unchanged.
func (s *BookScraper) SaveData(ctx context.Context, category string, format Format, path string, opts *SaveOptions) (*table.Table, error) {
	switch format {
	case FormatDF, FormatCSV, FormatExcel:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if format.requiresPath() && path == "" {
		return nil, fmt.Errorf("%w for format %q", ErrMissingPath, format)
	}

	records, err := s.Scrape(ctx, category)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		log.Printf("WARN: Category %q produced no records", category)
	}

	tbl := Normalize(records, opts)

	switch format {
	case FormatCSV:
		if err := tbl.WriteCSVFile(path); err != nil {
			return nil, err
		}
		return nil, nil
	case FormatExcel:
		if err := tbl.WriteXLSXFile(path); err != nil {
			return nil, err
		}
		return nil, nil
	default:
		return tbl, nil
	}
}
