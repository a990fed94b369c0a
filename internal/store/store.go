// Package store defines the read contract the engine consumes from the
// external catalog store. Backends provide eligibility filtering, sort-key
// ordering and cursor range filtering; token matching and scoring stay in the
// engine, which operates on a live filtered scan, not a precomputed index.
package store

import (
	"context"
	"time"

	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
)

// Store is the catalog store facade. Consumers depend on the narrow
// sub-interfaces (ISP), the facade exists for wiring.
type Store interface {
	Pinger
	ProductLister
	CategoryLister
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProductQuery bounds a product scan. Only published products are ever
// returned; eligibility filters run store-side, before any token matching.
type ProductQuery struct {
	CategorySlug string          // restrict to members of this category, "" = all
	InStockOnly  bool            // drop out-of-stock rows
	Sort         browse.Sort     // total order, id tiebreak
	After        *browse.PageKey // exclusive range start, nil = from the beginning
	Limit        int             // max rows, must be > 0
}

// ProductLister reads bounded, ordered product row sets.
type ProductLister interface {
	ListProducts(ctx context.Context, q ProductQuery) ([]ProductRow, error)
}

// CategoryLister reads the bounded category set.
type CategoryLister interface {
	ListCategories(ctx context.Context, limit int) ([]CategoryRow, error)
}

// ProductRow is a raw product record as the store delivers it. ImageJSON is
// the unparsed image payload (bare URL string or {src,alt} object); the
// repository normalizes it before core logic runs.
type ProductRow struct {
	ID            string
	Name          string
	Slug          string
	PriceMinor    *int64
	ImageJSON     []byte
	Stock         string
	CategorySlugs []string
	CreatedAtMs   int64
}

// CategoryRow is a raw category record.
type CategoryRow struct {
	ID        string
	Name      string
	Slug      string
	ImageJSON []byte
}
