// Package search implements the catalog query pipeline: tokenize, AND-match,
// score, and resolve the category fallback.
package search

import (
	"context"
	"fmt"

	"github.com/muratgulerr33/katalog-api/internal/domain"
	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	"github.com/muratgulerr33/katalog-api/internal/domain/search/predicate"
	"github.com/muratgulerr33/katalog-api/internal/domain/search/result"
	"github.com/muratgulerr33/katalog-api/internal/domain/search/score"
	"github.com/muratgulerr33/katalog-api/internal/domain/search/token"
	"github.com/muratgulerr33/katalog-api/internal/metrics"
)

// Default result limits.
const (
	DefaultProductLimit  = 20
	DefaultCategoryLimit = 8
	DefaultFallbackLimit = 20
	DefaultMaxCandidates = 2000
)

// Response is the search result bundle. Every field is always well-formed:
// slices are non-nil even on no-match or failure, so callers can render an
// empty state without special-casing missing fields. FallbackCategory and
// FallbackItems are populated only when Items is empty and a category matched;
// callers show either the primary heading or the fallback heading, never both.
type Response struct {
	Items            []result.Item
	Categories       []result.Category
	FallbackCategory *catalog.Category
	FallbackItems    []catalog.Product
}

// EmptyResponse returns a well-formed no-match response.
func EmptyResponse() Response {
	return Response{
		Items:         []result.Item{},
		Categories:    []result.Category{},
		FallbackItems: []catalog.Product{},
	}
}

// Service runs free-text catalog queries.
type Service struct {
	repo          CatalogReader
	maxCandidates int
	productLimit  int
	categoryLimit int
	fallbackLimit int
}

// New creates a search service with default limits.
func New(repo CatalogReader) *Service {
	return &Service{
		repo:          repo,
		maxCandidates: DefaultMaxCandidates,
		productLimit:  DefaultProductLimit,
		categoryLimit: DefaultCategoryLimit,
		fallbackLimit: DefaultFallbackLimit,
	}
}

// WithLimits overrides result limits. Zero values keep the defaults.
func (s *Service) WithLimits(maxCandidates, productLimit, categoryLimit, fallbackLimit int) *Service {
	if maxCandidates > 0 {
		s.maxCandidates = maxCandidates
	}
	if productLimit > 0 {
		s.productLimit = productLimit
	}
	if categoryLimit > 0 {
		s.categoryLimit = categoryLimit
	}
	if fallbackLimit > 0 {
		s.fallbackLimit = fallbackLimit
	}
	return s
}

// Search tokenizes the query, AND-matches products and categories over their
// name and slug fields, ranks both sets, and resolves the category fallback
// when no product matched. A query without valid tokens yields the empty
// response, not a wildcard match and not an error. On store failure the empty
// response is returned alongside the error so callers can always render it.
func (s *Service) Search(ctx context.Context, query string, limit int) (Response, error) {
	tokens := token.Tokenize(query)
	if len(tokens) == 0 {
		metrics.ObserveSearch(metrics.OutcomeEmptyQuery)
		return EmptyResponse(), nil
	}

	if limit <= 0 || limit > s.productLimit {
		limit = s.productLimit
	}
	pred := predicate.New(tokens)

	candidates, err := s.repo.EligibleProducts(ctx, true, s.maxCandidates)
	if err != nil {
		metrics.ObserveSearch(metrics.OutcomeError)
		return EmptyResponse(), fmt.Errorf("search products: %w: %w", domain.ErrUnavailable, err)
	}

	matched := candidates[:0]
	for _, p := range candidates {
		if pred.Matches(p.Name, p.Slug) {
			matched = append(matched, p)
		}
	}
	resp := EmptyResponse()
	resp.Items = score.RankProducts(matched, query, tokens, limit)

	cats, err := s.repo.Categories(ctx, s.maxCandidates)
	if err != nil {
		metrics.ObserveSearch(metrics.OutcomeError)
		return EmptyResponse(), fmt.Errorf("search categories: %w: %w", domain.ErrUnavailable, err)
	}

	matchedCats := cats[:0]
	for _, c := range cats {
		if pred.Matches(c.Name, c.Slug) {
			matchedCats = append(matchedCats, c)
		}
	}
	resp.Categories = score.RankCategories(matchedCats, query, tokens, s.categoryLimit)

	if err := s.resolveFallback(ctx, &resp); err != nil {
		metrics.ObserveSearch(metrics.OutcomeError)
		return EmptyResponse(), err
	}

	switch {
	case resp.FallbackCategory != nil:
		metrics.ObserveSearch(metrics.OutcomeFallback)
	case len(resp.Items) == 0 && len(resp.Categories) == 0:
		metrics.ObserveSearch(metrics.OutcomeNoMatch)
	default:
		metrics.ObserveSearch(metrics.OutcomeMatched)
	}
	return resp, nil
}

// Categories lists the catalog's categories for navigation.
func (s *Service) Categories(ctx context.Context) ([]catalog.Category, error) {
	cats, err := s.repo.Categories(ctx, s.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w: %w", domain.ErrUnavailable, err)
	}
	return cats, nil
}

// resolveFallback substitutes the best-matching category's member products
// when no product matched directly. It triggers only when the primary product
// list is empty and at least one category matched; otherwise the response
// keeps its explicit "no fallback" state.
func (s *Service) resolveFallback(ctx context.Context, resp *Response) error {
	if len(resp.Items) > 0 || len(resp.Categories) == 0 {
		return nil
	}

	top := resp.Categories[0].Category()
	items, err := s.repo.ProductsInCategory(ctx, top.Slug, s.fallbackLimit)
	if err != nil {
		return fmt.Errorf("resolve fallback for %s: %w: %w", top.Slug, domain.ErrUnavailable, err)
	}

	resp.FallbackCategory = &top
	resp.FallbackItems = items
	if resp.FallbackItems == nil {
		resp.FallbackItems = []catalog.Product{}
	}
	return nil
}
