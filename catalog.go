package booksdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Category is a named subset of the catalog, identified by its listing
// path relative to the base URL (for example "books/travel_2").
type Category struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Record is the raw field-to-value mapping for one product, with every
// value exactly as displayed on the product page. Keys follow the site's
// display columns; see Columns for the canonical set and order.
type Record map[string]string

// Columns lists the Record fields in canonical display order. Normalized
// tables use this column order (plus a trailing "Currency" column when
// currency extraction is enabled).
var Columns = []string{
	"Product name",
	"URL",
	"Rating",
	"UPC",
	"Product Type",
	"Price (excl. tax)",
	"Price (incl. tax)",
	"Tax",
	"Availability",
	"Number of reviews",
}

// parseDocument parses raw markup into a goquery document.
func parseDocument(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}

// parseCategories extracts the sidebar category list in display order.
// Hrefs look like "../books/travel_2/index.html"; the stored path drops
// the leading "../" and the trailing "/index.html".
func parseCategories(doc *goquery.Document) []Category {
	var categories []Category

	doc.Find("ul a[href^='../books/']").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		path := strings.TrimPrefix(href, "../")
		path = strings.TrimSuffix(path, "/index.html")

		categories = append(categories, Category{
			Name: strings.TrimSpace(sel.Text()),
			Path: path,
		})
	})

	return categories
}

// parseProductPaths extracts product page paths from a listing page in
// display order. Hrefs look like "../../../some-title_42/index.html" and
// resolve relative to the base URL once the "../" segments are stripped.
func parseProductPaths(doc *goquery.Document) []string {
	var paths []string

	doc.Find("article.product_pod > h3 > a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}

		for strings.HasPrefix(href, "../") {
			href = strings.TrimPrefix(href, "../")
		}

		paths = append(paths, href)
	})

	return paths
}

// parsePageCount reads the pager element ("Page 1 of N") and returns the
// total page count. Listing pages without a pager are single pages.
func parsePageCount(doc *goquery.Document) (int, error) {
	pager := doc.Find("ul.pager li.current").First()
	if pager.Length() == 0 {
		return 1, nil
	}

	fields := strings.Fields(strings.TrimSpace(pager.Text()))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty pager element", ErrParse)
	}

	count, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed pager %q", ErrParse, pager.Text())
	}

	return count, nil
}

// parseProductInfo extracts one Record from a product detail page. The
// product name and the information table are required; the rating comes
// from the second class of the star-rating element (e.g. "star-rating
// Three").
func parseProductInfo(doc *goquery.Document, url string) (Record, error) {
	name := strings.TrimSpace(doc.Find("article.product_page div.product_main > h1").First().Text())
	if name == "" {
		return nil, fmt.Errorf("%w: no product name at %s", ErrParse, url)
	}

	record := Record{
		"Product name": name,
		"URL":          url,
	}

	if classes, ok := doc.Find("article.product_page div.product_main p.star-rating").First().Attr("class"); ok {
		fields := strings.Fields(classes)
		if len(fields) > 1 {
			record["Rating"] = fields[len(fields)-1]
		}
	}

	rows := doc.Find("article.product_page > table.table-striped tr")
	if rows.Length() == 0 {
		return nil, fmt.Errorf("%w: no product information table at %s", ErrParse, url)
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		key := strings.TrimSpace(row.Find("th").First().Text())
		value := strings.TrimSpace(row.Find("td").First().Text())
		if key != "" {
			record[key] = value
		}
	})

	return record, nil
}
