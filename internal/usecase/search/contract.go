package search

import (
	"context"

	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
)

// CatalogReader defines the storage contract for search operations.
type CatalogReader interface {
	// EligibleProducts returns the bounded candidate set, already filtered by
	// published status and, when inStockOnly is set, by stock.
	EligibleProducts(ctx context.Context, inStockOnly bool, limit int) ([]catalog.Product, error)

	// ProductsInCategory returns eligible member products of a category.
	ProductsInCategory(ctx context.Context, slug string, limit int) ([]catalog.Product, error)

	// Categories returns the bounded category set.
	Categories(ctx context.Context, limit int) ([]catalog.Category, error)
}
