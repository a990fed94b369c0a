// Package score computes deterministic relevance scores and stable rankings.
package score

import (
	"cmp"
	"slices"
	"strings"

	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	"github.com/muratgulerr33/katalog-api/internal/domain/search/result"
	"github.com/muratgulerr33/katalog-api/internal/domain/search/token"
)

// Weights. Names are user-facing, so name hits outrank slug hits of equal
// strength; exact > prefix > substring; every extra matched token adds.
const (
	exactName    = 100.0
	prefixName   = 60.0
	queryInName  = 30.0
	exactSlug    = 50.0
	prefixSlug   = 30.0
	queryInSlug  = 15.0
	tokenInName  = 10.0
	tokenInSlug  = 5.0
)

// Fields scores one candidate's name and slug against the folded whole query
// and its tokens. A zero score means no field matched at all.
func Fields(name, slug, foldedQuery string, tokens []string) float64 {
	fname := token.Fold(name)
	fslug := token.Fold(slug)

	var s float64
	switch {
	case foldedQuery == "":
	case fname == foldedQuery:
		s += exactName
	case strings.HasPrefix(fname, foldedQuery):
		s += prefixName
	case strings.Contains(fname, foldedQuery):
		s += queryInName
	}
	switch {
	case foldedQuery == "":
	case fslug == foldedQuery:
		s += exactSlug
	case strings.HasPrefix(fslug, foldedQuery):
		s += prefixSlug
	case strings.Contains(fslug, foldedQuery):
		s += queryInSlug
	}

	for _, t := range tokens {
		switch {
		case strings.Contains(fname, t):
			s += tokenInName
		case strings.Contains(fslug, t):
			s += tokenInSlug
		}
	}
	return s
}

// RankProducts scores candidates and returns them in descending score order,
// truncated to limit. The sort is stable: equally-scored candidates keep their
// scan order, no secondary key is introduced.
func RankProducts(candidates []catalog.Product, rawQuery string, tokens []string, limit int) []result.Item {
	q := token.Fold(strings.TrimSpace(rawQuery))

	items := make([]result.Item, 0, len(candidates))
	for _, p := range candidates {
		items = append(items, result.NewItem(p, Fields(p.Name, p.Slug, q, tokens)))
	}
	slices.SortStableFunc(items, func(a, b result.Item) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	return truncate(items, limit)
}

// RankCategories is RankProducts for categories.
func RankCategories(candidates []catalog.Category, rawQuery string, tokens []string, limit int) []result.Category {
	q := token.Fold(strings.TrimSpace(rawQuery))

	cats := make([]result.Category, 0, len(candidates))
	for _, c := range candidates {
		cats = append(cats, result.NewCategory(c, Fields(c.Name, c.Slug, q, tokens)))
	}
	slices.SortStableFunc(cats, func(a, b result.Category) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	return truncate(cats, limit)
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
