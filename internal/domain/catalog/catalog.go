// Package catalog holds read-only projections of the external catalog store.
// The engine never mutates them; they live for the duration of one query.
package catalog

// StockStatus is the availability state of a product.
type StockStatus string

const (
	// InStock indicates the product can be ordered.
	InStock StockStatus = "instock"
	// OutOfStock indicates the product cannot be ordered.
	OutOfStock StockStatus = "outofstock"
)

// ImageRef is the canonical image shape. Store payloads arrive either as a bare
// URL string or as an object with src/alt; both are normalized into this type
// at the repository boundary before any core logic sees them.
type ImageRef struct {
	Src string
	Alt string
}

// IsZero reports whether no image is set.
func (i ImageRef) IsZero() bool { return i.Src == "" }

// Product is the search view of a catalog product.
type Product struct {
	ID            string
	Name          string
	Slug          string
	PriceMinor    *int64 // minor currency units; nil = no listed price
	Image         ImageRef
	Stock         StockStatus
	CategorySlugs []string
	CreatedAtMs   int64 // unix milliseconds, sort key for newest-first
}

// InStock reports whether the product is orderable.
func (p Product) InStock() bool { return p.Stock == InStock }

// Category is the search view of a catalog category.
type Category struct {
	ID    string
	Name  string
	Slug  string
	Image ImageRef
}
