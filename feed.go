package katalog

import (
	"sync"

	"github.com/muratgulerr33/katalog-api/internal/domain/search/intent"
)

// MergeProducts merges a newly fetched page into an accumulated list without
// reintroducing already-present products. Identity is the stable product ID;
// an incoming item whose ID is already present is dropped, not updated:
// first-seen wins, pages are assumed not to mutate display data within one
// browsing session. Items without an ID are never deduplicated and always
// append, so an unidentified row is repeated rather than silently lost.
// Order is append-only: existing items first, then new arrivals.
func MergeProducts(existing, incoming []Product) []Product {
	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		if p.ID != "" {
			seen[p.ID] = struct{}{}
		}
	}

	out := existing
	for _, p := range incoming {
		if p.ID != "" {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
		}
		out = append(out, p)
	}
	return out
}

// Feed accumulates incrementally loaded product pages. It is the one piece of
// state kept outside the engine: caller-owned, explicit, with the merge rules
// of MergeProducts. The in-flight guard makes duplicate "load more" triggers
// and late duplicate responses harmless without request cancellation.
type Feed struct {
	mu        sync.Mutex
	items     []Product
	cursor    string
	started   bool
	exhausted bool
	loading   bool
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Merge folds a page into the feed and records its continuation cursor.
// Returns how many items were actually appended; re-merging the same page is
// a no-op for the item list.
func (f *Feed) Merge(page Page) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	before := len(f.items)
	f.items = MergeProducts(f.items, page.Items)
	f.cursor = page.NextCursor
	f.started = true
	f.exhausted = page.NextCursor == ""
	return len(f.items) - before
}

// Items returns a copy of the accumulated list.
func (f *Feed) Items() []Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Product, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the accumulated item count.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// Cursor returns the continuation cursor recorded by the last merge.
func (f *Feed) Cursor() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursor
}

// Exhausted reports whether the last merged page was the final one.
func (f *Feed) Exhausted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started && f.exhausted
}

// BeginLoad marks a page request in flight. Returns false when one already
// is, so callers skip firing a second concurrent request.
func (f *Feed) BeginLoad() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading {
		return false
	}
	f.loading = true
	return true
}

// EndLoad clears the in-flight mark.
func (f *Feed) EndLoad() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
}

// Visible returns the accumulated items narrowed to an intent class, computed
// from text already fetched without a second round-trip.
func (f *Feed) Visible(class IntentClass) []Product {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Product, 0, len(f.items))
	for _, p := range f.items {
		got := intent.Classify(p.Slug, p.Name, p.CategorySlugs)
		if intent.Matches(class, got) {
			out = append(out, p)
		}
	}
	return out
}
