// Package booksdata scrapes product listings from a books.toscrape.com
// style catalog site and converts them into structured tabular records.
//
// The entry point is BookScraper, a session-scoped object wrapping one
// HTTP client. Callers create one with New, defer Close, and then call
// Scrape for raw records or SaveData for a normalized table rendered as
// an in-memory table, a CSV file, or an XLSX file.
package booksdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pevans/booksdata/config"
)

// Default settings used when no Options (and no config file) are provided.
const (
	DefaultBaseURL   = "https://books.toscrape.com/catalogue/"
	DefaultUserAgent = "booksdata/1.0 (catalog scraper)"
	DefaultTimeout   = 10 * time.Second
)

// Options configures a BookScraper. The zero value of any field falls back
// to the corresponding default.
type Options struct {
	// Base URL of the catalog, always with a trailing slash. All request
	// paths are resolved relative to it.
	BaseURL string
	// Value of the User-Agent header sent with every request.
	UserAgent string
	// Timeout applied by the underlying HTTP client. There is no retry or
	// cancellation policy beyond this and the caller's context.
	Timeout time.Duration
	// Extra headers set on every request.
	Headers map[string]string
}

// DefaultOptions returns the default scraper options, overlaid with any
// settings found in the user's config file. A missing or unreadable config
// file is ignored.
func DefaultOptions() *Options {
	opts := &Options{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}

	cfg, err := config.LoadConfigFile()
	if err != nil || cfg == nil {
		return opts
	}

	if cfg.Scraper.BaseURL != "" {
		opts.BaseURL = cfg.Scraper.BaseURL
	}
	if cfg.Scraper.UserAgent != "" {
		opts.UserAgent = cfg.Scraper.UserAgent
	}
	if cfg.Scraper.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.Scraper.TimeoutSeconds) * time.Second
	}
	if len(cfg.Scraper.Headers) > 0 {
		opts.Headers = cfg.Scraper.Headers
	}

	return opts
}

// BookScraper wraps one HTTP session for the duration of a scrape. The
// session is opened by New and released exactly once by Close; a scraper
// must not be reused after Close (create a fresh one instead).
type BookScraper struct {
	baseURL   string
	userAgent string
	headers   map[string]string
	client    *http.Client
	closed    bool
}

// New creates a scraper ready for use. A nil opts means DefaultOptions.
func New(opts *Options) *BookScraper {
	if opts == nil {
		opts = DefaultOptions()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &BookScraper{
		baseURL:   baseURL,
		userAgent: userAgent,
		headers:   opts.Headers,
		client:    &http.Client{Timeout: timeout},
	}
}

// Close releases the session's underlying connections. It is safe to call
// more than once; only the first call does anything. Any operation on the
// scraper after Close fails with ErrClosed.
func (s *BookScraper) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.client.CloseIdleConnections()
}

// fetch performs a single GET for the given path relative to the base URL
// and returns the raw markup. Non-2xx responses become a *StatusError.
func (s *BookScraper) fetch(ctx context.Context, path string) (string, error) {
	if s.closed {
		return "", ErrClosed
	}

	url := s.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", url, err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	for key, value := range s.headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return string(body), nil
}
