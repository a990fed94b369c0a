package browse

import (
	"context"

	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
)

// CatalogPager defines the storage contract for cursor pagination.
type CatalogPager interface {
	// ProductPage returns up to limit eligible products after the given key
	// under (filters, sort). A nil key starts from the beginning.
	ProductPage(
		ctx context.Context, filters browse.Filters, sort browse.Sort,
		after *browse.PageKey, limit int,
	) ([]catalog.Product, error)
}
