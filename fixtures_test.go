package booksdata

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// The test site mirrors the target catalog's layout: a category index with
// a sidebar, per-category listing pages with product pods and an optional
// pager, and one detail page per product.

const categoryIndexHTML = `<!DOCTYPE html>
<html>
<body>
<div class="side_categories">
  <ul class="nav nav-list">
    <li>
      <a href="../books_1/index.html">Books</a>
      <ul>
        <li><a href="../books/travel_2/index.html">Travel</a></li>
        <li><a href="../books/mystery_3/index.html">Mystery</a></li>
        <li><a href="../books/poetry_23/index.html">Poetry</a></li>
      </ul>
    </li>
  </ul>
</div>
</body>
</html>`

const travelPage1HTML = `<!DOCTYPE html>
<html>
<body>
<section>
  <ol class="row">
    <li>
      <article class="product_pod">
        <h3><a href="../../../a-light-in-the-attic_1000/index.html">A Light in the Attic</a></h3>
      </article>
    </li>
    <li>
      <article class="product_pod">
        <h3><a href="../../../full-moon-over-noahs-ark_811/index.html">Full Moon over Noah's Ark</a></h3>
      </article>
    </li>
  </ol>
  <ul class="pager">
    <li class="current">Page 1 of 2</li>
    <li class="next"><a href="page-2.html">next</a></li>
  </ul>
</section>
</body>
</html>`

const travelPage2HTML = `<!DOCTYPE html>
<html>
<body>
<section>
  <ol class="row">
    <li>
      <article class="product_pod">
        <h3><a href="../../../see-america_732/index.html">See America</a></h3>
      </article>
    </li>
  </ol>
  <ul class="pager">
    <li class="previous"><a href="index.html">previous</a></li>
    <li class="current">Page 2 of 2</li>
  </ul>
</section>
</body>
</html>`

const mysteryPageHTML = `<!DOCTYPE html>
<html>
<body>
<section>
  <ol class="row">
    <li>
      <article class="product_pod">
        <h3><a href="../../../sharp-objects_997/index.html">Sharp Objects</a></h3>
      </article>
    </li>
  </ol>
</section>
</body>
</html>`

// productPageHTML renders a product detail page fixture.
func productPageHTML(name, rating, upc, priceExcl, priceIncl, tax, availability, reviews string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
<article class="product_page">
  <div class="row">
    <div class="col-sm-6 product_main">
      <h1>%s</h1>
      <p class="star-rating %s"></p>
    </div>
  </div>
  <table class="table table-striped">
    <tr><th>UPC</th><td>%s</td></tr>
    <tr><th>Product Type</th><td>Books</td></tr>
    <tr><th>Price (excl. tax)</th><td>%s</td></tr>
    <tr><th>Price (incl. tax)</th><td>%s</td></tr>
    <tr><th>Tax</th><td>%s</td></tr>
    <tr><th>Availability</th><td>%s</td></tr>
    <tr><th>Number of reviews</th><td>%s</td></tr>
  </table>
</article>
</body>
</html>`, name, rating, upc, priceExcl, priceIncl, tax, availability, reviews)
}

// newTestSite starts an httptest server exposing the fixture catalog and
// returns it with a scraper pointed at it. The caller owns both.
func newTestSite(t *testing.T) (*httptest.Server, *BookScraper) {
	t.Helper()

	mux := http.NewServeMux()

	pages := map[string]string{
		"/catalogue/category/books_1/index.html":         categoryIndexHTML,
		"/catalogue/category/books/travel_2/index.html":  travelPage1HTML,
		"/catalogue/category/books/travel_2/page-2.html": travelPage2HTML,
		"/catalogue/category/books/mystery_3/index.html": mysteryPageHTML,
		"/catalogue/a-light-in-the-attic_1000/index.html": productPageHTML(
			"A Light in the Attic", "Three", "a897fe39b1053632",
			"£51.77", "£51.77", "£0.00", "In stock (22 available)", "0"),
		"/catalogue/full-moon-over-noahs-ark_811/index.html": productPageHTML(
			"Full Moon over Noah's Ark", "Four", "38c307e15dc7d4e2",
			"£49.43", "£49.43", "£0.00", "In stock (15 available)", "0"),
		"/catalogue/see-america_732/index.html": productPageHTML(
			"See America", "Three", "f9705c362f070608",
			"£48.87", "£48.87", "£0.00", "In stock (14 available)", "0"),
		"/catalogue/sharp-objects_997/index.html": productPageHTML(
			"Sharp Objects", "Four", "e00eb4fd7b871a48",
			"£47.82", "£47.82", "£0.00", "In stock (20 available)", "0"),
	}

	for path, body := range pages {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, body)
		})
	}

	// Poetry exists in the sidebar but its listing page is gone, so
	// scraping it exercises the HTTP status failure path.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	scraper := New(&Options{BaseURL: server.URL + "/catalogue/"})
	t.Cleanup(scraper.Close)

	return server, scraper
}
