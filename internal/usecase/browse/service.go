// Package browse implements cursor-based incremental catalog listing.
package browse

import (
	"context"
	"fmt"

	"github.com/muratgulerr33/katalog-api/internal/domain"
	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
)

// Default page size limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one result page. An empty NextCursor signals end of stream; Items
// is never nil.
type Page struct {
	Items      []catalog.Product
	NextCursor string
}

// EmptyPage returns a well-formed exhausted page.
func EmptyPage() Page {
	return Page{Items: []catalog.Product{}}
}

// Service pages through the filtered, sorted catalog. It holds no state
// across calls; the same cursor with the same partition always yields the
// same page, which makes retries safe.
type Service struct {
	repo            CatalogPager
	defaultPageSize int
	maxPageSize     int
}

// New creates a browse service.
func New(repo CatalogPager) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// ListPage returns the page after cursor under (filters, sort). The pager
// probes one row past the limit to decide the next cursor eagerly. A cursor
// that cannot be decoded or was issued under a different (sort, filters)
// partition terminates pagination with an empty page rather than erroring;
// the caller's dedup merge absorbs any overlap that leniency produces.
func (s *Service) ListPage(
	ctx context.Context, filters browse.Filters, sort browse.Sort, cursor string, limit int,
) (Page, error) {
	if sort == "" {
		sort = browse.DefaultSort
	}
	if !sort.IsValid() {
		return EmptyPage(), fmt.Errorf("sort %q: %w", sort, domain.ErrInvalidSort)
	}

	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	var after *browse.PageKey
	if cursor != "" {
		c, err := browse.DecodeCursor(cursor)
		if err != nil || !c.InScope(sort, filters) {
			return EmptyPage(), nil
		}
		key := c.Key()
		after = &key
	}

	items, err := s.repo.ProductPage(ctx, filters, sort, after, limit+1)
	if err != nil {
		return EmptyPage(), fmt.Errorf("list page: %w: %w", domain.ErrUnavailable, err)
	}

	page := Page{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[limit-1]
		page.NextCursor = browse.NewCursor(sort, filters, browse.PageKey{
			Key: sort.KeyOf(last.Name, last.PriceMinor, last.CreatedAtMs),
			ID:  last.ID,
		}).Encode()
	}
	if page.Items == nil {
		page.Items = []catalog.Product{}
	}
	return page, nil
}
