package booksdata

import (
	"errors"
	"fmt"
)

// Custom errors for scrape and export operations. Callers distinguish
// failure kinds with errors.Is; HTTP status failures additionally carry a
// *StatusError reachable via errors.As.
var (
	// ErrClosed is returned when a scraper is used after Close.
	ErrClosed = errors.New("scraper is closed")
	// ErrCategoryNotFound is returned when the requested category does not
	// exist on the target site.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrParse is returned when a page does not match the expected layout.
	ErrParse = errors.New("unexpected page structure")
	// ErrMissingPath is returned by SaveData when the selected format
	// requires an output path and none was given.
	ErrMissingPath = errors.New("output path is required")
	// ErrUnsupportedFormat is returned by SaveData for a format outside
	// the recognized set.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// StatusError reports a non-success HTTP status from the target site.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d for %s", e.StatusCode, e.URL)
}
