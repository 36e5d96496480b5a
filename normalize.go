package booksdata

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pevans/booksdata/table"
)

// SaveOptions controls the per-field transforms SaveData applies before
// rendering. A nil SaveOptions means DefaultSaveOptions.
type SaveOptions struct {
	// Convert the "Rating" column from its word form ("One".."Five") into
	// a float.
	RatingAsFloat bool
	// Convert "Price (excl. tax)", "Price (incl. tax)" and "Tax" from
	// their displayed currency strings into floats.
	ParsePrices bool
	// Add a trailing "Currency" column holding the currency symbol
	// extracted from "Price (incl. tax)".
	ParseCurrency bool
	// Convert the "Availability" column into a float count of items in
	// stock.
	ParseAvailability bool
}

// DefaultSaveOptions returns the default transform set: everything on.
func DefaultSaveOptions() *SaveOptions {
	return &SaveOptions{
		RatingAsFloat:     true,
		ParsePrices:       true,
		ParseCurrency:     true,
		ParseAvailability: true,
	}
}

var ratingValues = map[string]float64{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
}

var (
	freePattern       = regexp.MustCompile(`(?i)(free|give away|gratis|no charge)`)
	nonNumericPattern = regexp.MustCompile(`[^0-9.]`)
	currencyPattern   = regexp.MustCompile(`[$£€]`)
	outOfStockPattern = regexp.MustCompile(`(?i)(not in stock|out of stock|sold out|unavailable)`)
)

// ratingToFloat converts a rating word into a float, NaN when malformed.
func ratingToFloat(rating string) float64 {
	if value, ok := ratingValues[strings.ToLower(strings.TrimSpace(rating))]; ok {
		return value
	}
	return math.NaN()
}

// priceToFloat converts a displayed currency amount ("£51.77") into a
// float. Free-of-charge synonyms become 0; malformed values become NaN.
func priceToFloat(price string) float64 {
	if freePattern.MatchString(price) {
		return 0
	}
	return parseNumeric(price)
}

// availabilityToFloat converts a displayed availability ("In stock (22
// available)") into a float count. Out-of-stock synonyms become 0;
// malformed values become NaN.
func availabilityToFloat(availability string) float64 {
	if outOfStockPattern.MatchString(availability) {
		return 0
	}
	return parseNumeric(availability)
}

// currencySymbol extracts the currency symbol from a displayed amount.
// Returns an empty string when no known symbol is present.
func currencySymbol(price string) string {
	return currencyPattern.FindString(price)
}

// parseNumeric strips everything but digits and dots, then parses.
func parseNumeric(value string) float64 {
	stripped := nonNumericPattern.ReplaceAllString(value, "")
	parsed, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return math.NaN()
	}
	return parsed
}

// priceColumns are the columns affected by SaveOptions.ParsePrices.
var priceColumns = map[string]bool{
	"Price (excl. tax)": true,
	"Price (incl. tax)": true,
	"Tax":               true,
}

// Normalize converts raw records into a table, applying the transforms
// selected by opts. The table has exactly one row per record, in record
// order, with columns in the canonical order (plus "Currency" last when
// enabled). Numeric cells are float64; malformed or absent numeric source
// values become NaN.
func Normalize(records []Record, opts *SaveOptions) *table.Table {
	if opts == nil {
		opts = DefaultSaveOptions()
	}

	columns := make([]string, len(Columns))
	copy(columns, Columns)
	if opts.ParseCurrency {
		columns = append(columns, "Currency")
	}

	tbl := table.New(columns)

	for _, record := range records {
		cells := make([]any, 0, len(columns))

		for _, column := range Columns {
			raw := record[column]

			switch {
			case opts.RatingAsFloat && column == "Rating":
				cells = append(cells, ratingToFloat(raw))
			case opts.ParsePrices && priceColumns[column]:
				cells = append(cells, priceToFloat(raw))
			case opts.ParseAvailability && column == "Availability":
				cells = append(cells, availabilityToFloat(raw))
			default:
				cells = append(cells, raw)
			}
		}

		if opts.ParseCurrency {
			cells = append(cells, currencySymbol(record["Price (incl. tax)"]))
		}

		tbl.AppendRow(cells)
	}

	return tbl
}
