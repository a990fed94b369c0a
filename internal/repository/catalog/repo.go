// Package catalog maps raw store rows into domain projections.
package catalog

import (
	"context"
	"fmt"

	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
	domcat "github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	"github.com/muratgulerr33/katalog-api/internal/store"
)

// reader is the consumer interface for catalog reads (ISP).
type reader interface {
	ListProducts(ctx context.Context, q store.ProductQuery) ([]store.ProductRow, error)
	ListCategories(ctx context.Context, limit int) ([]store.CategoryRow, error)
}

// Repo implements the catalog read contracts of the search and browse
// use cases.
type Repo struct {
	store reader
}

// New creates a catalog repository.
func New(s reader) *Repo {
	return &Repo{store: s}
}

// EligibleProducts returns up to limit published products in newest-first
// order, the candidate set for engine-side token matching.
func (r *Repo) EligibleProducts(ctx context.Context, inStockOnly bool, limit int) ([]domcat.Product, error) {
	rows, err := r.store.ListProducts(ctx, store.ProductQuery{
		InStockOnly: inStockOnly,
		Sort:        browse.SortNewest,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list eligible products: %w", err)
	}
	return productsFromRows(rows), nil
}

// ProductsInCategory returns up to limit eligible members of a category. The
// category membership itself is the filter; no token constraint applies.
func (r *Repo) ProductsInCategory(ctx context.Context, slug string, limit int) ([]domcat.Product, error) {
	rows, err := r.store.ListProducts(ctx, store.ProductQuery{
		CategorySlug: slug,
		InStockOnly:  true,
		Sort:         browse.SortNewest,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list products in category %s: %w", slug, err)
	}
	return productsFromRows(rows), nil
}

// ProductPage returns one keyset page under the given partition.
func (r *Repo) ProductPage(
	ctx context.Context, filters browse.Filters, sort browse.Sort, after *browse.PageKey, limit int,
) ([]domcat.Product, error) {
	rows, err := r.store.ListProducts(ctx, store.ProductQuery{
		CategorySlug: filters.CategorySlug,
		InStockOnly:  filters.InStockOnly,
		Sort:         sort,
		After:        after,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list product page: %w", err)
	}
	return productsFromRows(rows), nil
}

// Categories returns up to limit categories.
func (r *Repo) Categories(ctx context.Context, limit int) ([]domcat.Category, error) {
	rows, err := r.store.ListCategories(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	cats := make([]domcat.Category, 0, len(rows))
	for _, row := range rows {
		cats = append(cats, categoryFromRow(row))
	}
	return cats, nil
}

func productsFromRows(rows []store.ProductRow) []domcat.Product {
	ps := make([]domcat.Product, 0, len(rows))
	for _, row := range rows {
		ps = append(ps, productFromRow(row))
	}
	return ps
}
