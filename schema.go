// Package katalog is the embedded client for the catalog query engine. It
// wraps the store, repositories and use case services behind one constructor
// for in-process use, and carries the page-accumulation contract (Feed) that
// keeps incrementally loaded product lists free of repeats.
package katalog

import (
	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
	"github.com/muratgulerr33/katalog-api/internal/domain/search/intent"
)

// Image is a normalized product or category image reference.
type Image struct {
	Src string
	Alt string
}

// Product is the public search view of a catalog product.
type Product struct {
	ID            string
	Name          string
	Slug          string
	PriceMinor    *int64 // minor currency units; nil = no listed price
	Image         Image
	Stock         string
	CategorySlugs []string
}

// Category is the public search view of a catalog category.
type Category struct {
	ID    string
	Name  string
	Slug  string
	Image Image
}

// ScoredProduct is a ranked search hit.
type ScoredProduct struct {
	Product Product
	Score   float64
}

// ScoredCategory is a ranked category hit.
type ScoredCategory struct {
	Category Category
	Score    float64
}

// SearchResult is the search response bundle. Slices are never nil;
// FallbackCategory is nil and FallbackItems empty unless no product matched
// directly while a category did.
type SearchResult struct {
	Items            []ScoredProduct
	Categories       []ScoredCategory
	FallbackCategory *Category
	FallbackItems    []Product
}

// Page is one catalog listing page. An empty NextCursor means the stream is
// exhausted.
type Page struct {
	Items      []Product
	NextCursor string
}

// Sort options for catalog listing.
type Sort = browse.Sort

// Re-exported sort options.
const (
	SortNewest    = browse.SortNewest
	SortPriceAsc  = browse.SortPriceAsc
	SortPriceDesc = browse.SortPriceDesc
	SortNameAsc   = browse.SortNameAsc
)

// Filters narrows a catalog listing.
type Filters struct {
	CategorySlug string
	InStockOnly  bool
}

// IntentClass is the audience-affinity label derived from product text.
type IntentClass = intent.Class

// Re-exported intent classes.
const (
	IntentAll     = intent.All
	IntentWomen   = intent.Women
	IntentMen     = intent.Men
	IntentCouples = intent.Couples
)

// ClassifyIntent labels a product from text already present client-side. It
// is deterministic and never triggers a catalog query.
func ClassifyIntent(p Product) IntentClass {
	return intent.Classify(p.Slug, p.Name, p.CategorySlugs)
}
