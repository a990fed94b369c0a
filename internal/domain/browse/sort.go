// Package browse holds the sort options, filters and cursor codec for
// cursor-based catalog pagination.
package browse

import (
	"cmp"
	"strconv"
	"strings"
)

// Sort is a fixed catalog ordering. Every sort is made total by an identifier
// tiebreak so no item is skipped or repeated across pages.
type Sort string

const (
	// SortNewest orders by creation time, newest first.
	SortNewest Sort = "newest"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc Sort = "price_asc"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc Sort = "price_desc"
	// SortNameAsc orders by display name.
	SortNameAsc Sort = "name_asc"
)

// DefaultSort is used when the caller does not pick one.
const DefaultSort = SortNewest

// IsValid reports whether s is a known sort option.
func (s Sort) IsValid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	}
	return false
}

// Descending reports whether the sort walks its key downward.
func (s Sort) Descending() bool {
	return s == SortNewest || s == SortPriceDesc
}

// KeyOf renders the sort-key value of an item as a cursor-portable string.
// A nil price sorts as zero for both price orders.
func (s Sort) KeyOf(name string, priceMinor *int64, createdAtMs int64) string {
	switch s {
	case SortPriceAsc, SortPriceDesc:
		var p int64
		if priceMinor != nil {
			p = *priceMinor
		}
		return strconv.FormatInt(p, 10)
	case SortNameAsc:
		return name
	default:
		return strconv.FormatInt(createdAtMs, 10)
	}
}

// CompareKeys orders two key strings under this sort's key type: numeric for
// newest and the price sorts, bytewise for names. Direction is not applied
// here; callers combine it with Descending.
func (s Sort) CompareKeys(a, b string) int {
	switch s {
	case SortNameAsc:
		return strings.Compare(a, b)
	default:
		ai, _ := strconv.ParseInt(a, 10, 64)
		bi, _ := strconv.ParseInt(b, 10, 64)
		return cmp.Compare(ai, bi)
	}
}

// Filters narrows a product page. The (Sort, Filters) combination is the
// partition a cursor is scoped to.
type Filters struct {
	CategorySlug string
	InStockOnly  bool
}
