package booksdata

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// categoryIndexPath is the page listing every category in the sidebar.
const categoryIndexPath = "category/books_1/index.html"

// ListCategories fetches the catalog's category list in display order.
func (s *BookScraper) ListCategories(ctx context.Context) ([]Category, error) {
	markup, err := s.fetch(ctx, categoryIndexPath)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(markup)
	if err != nil {
		return nil, err
	}

	categories := parseCategories(doc)
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories on %s", ErrParse, categoryIndexPath)
	}

	return categories, nil
}

// resolveCategory matches a category name against the sidebar list. The
// match is case-insensitive and strict: "Default" matches "DEFAULT" but not
// "Default Category".
func resolveCategory(categories []Category, name string) (Category, bool) {
	for _, category := range categories {
		if strings.EqualFold(category.Name, name) {
			return category, true
		}
	}
	return Category{}, false
}

// collectProductPaths gathers product page paths for every listing page of
// a category, walking pages 2..N when the first page reports a pager.
func (s *BookScraper) collectProductPaths(ctx context.Context, category Category) ([]string, error) {
	markup, err := s.fetch(ctx, "category/"+category.Path+"/index.html")
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(markup)
	if err != nil {
		return nil, err
	}

	pageCount, err := parsePageCount(doc)
	if err != nil {
		return nil, err
	}

	paths := parseProductPaths(doc)

	for page := 2; page <= pageCount; page++ {
		markup, err := s.fetch(ctx, fmt.Sprintf("category/%s/page-%d.html", category.Path, page))
		if err != nil {
			return nil, err
		}

		doc, err := parseDocument(markup)
		if err != nil {
			return nil, err
		}

		paths = append(paths, parseProductPaths(doc)...)
	}

	return paths, nil
}

// Scrape fetches every product in the given category, in display order,
// and returns one raw Record per product. No normalization is performed;
// all values remain as displayed. Fetches are sequential, so only one
// request is in flight at a time.
func (s *BookScraper) Scrape(ctx context.Context, category string) ([]Record, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	resolved, ok := resolveCategory(categories, category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}

	paths, err := s.collectProductPaths(ctx, resolved)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		log.Printf("WARN: No products found in category %q", category)
	}

	records := make([]Record, 0, len(paths))
	for _, path := range paths {
		markup, err := s.fetch(ctx, path)
		if err != nil {
			return nil, err
		}

		doc, err := parseDocument(markup)
		if err != nil {
			return nil, err
		}

		record, err := parseProductInfo(doc, s.baseURL+path)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	log.Printf("INFO: Scraped %d products from category %q", len(records), category)

	return records, nil
}
