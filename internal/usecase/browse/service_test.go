package browse

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/muratgulerr33/katalog-api/internal/domain"
	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
)

// --- Mocks ---

// mockPager pages over a pre-sorted in-memory product list the way a real
// backend would: scan past the after-key, return up to limit rows.
type mockPager struct {
	sorted []catalog.Product
	err    error

	lastLimit int
}

func (m *mockPager) ProductPage(
	_ context.Context, _ browse.Filters, sort browse.Sort,
	after *browse.PageKey, limit int,
) ([]catalog.Product, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}

	start := 0
	if after != nil {
		for i, p := range m.sorted {
			if p.ID == after.ID {
				start = i + 1
				break
			}
		}
	}
	end := start + limit
	if end > len(m.sorted) {
		end = len(m.sorted)
	}
	out := make([]catalog.Product, end-start)
	copy(out, m.sorted[start:end])
	return out, nil
}

// newestCatalog builds n products already in newest-first order.
func newestCatalog(n int) []catalog.Product {
	products := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, catalog.Product{
			ID:          fmt.Sprintf("p%03d", i),
			Name:        "Product " + strconv.Itoa(i),
			Slug:        "product-" + strconv.Itoa(i),
			Stock:       catalog.InStock,
			CreatedAtMs: int64(2_000_000 - i),
		})
	}
	return products
}

// --- Tests ---

func TestListPage_WalksWithoutGapsOrRepeats(t *testing.T) {
	pager := &mockPager{sorted: newestCatalog(45)}
	svc := New(pager)

	seen := make(map[string]bool)
	var sizes []int
	cursor := ""
	for i := 0; i < 10; i++ {
		page, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, cursor, 20)
		if err != nil {
			t.Fatalf("page %d: %v", i, err)
		}
		sizes = append(sizes, len(page.Items))
		for _, p := range page.Items {
			if seen[p.ID] {
				t.Errorf("item %s repeated", p.ID)
			}
			seen[p.ID] = true
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	if len(sizes) != 3 || sizes[0] != 20 || sizes[1] != 20 || sizes[2] != 5 {
		t.Errorf("page sizes = %v, want [20 20 5]", sizes)
	}
	if len(seen) != 45 {
		t.Errorf("saw %d distinct items, want 45", len(seen))
	}
}

func TestListPage_ExactMultipleTerminatesEagerly(t *testing.T) {
	pager := &mockPager{sorted: newestCatalog(40)}
	svc := New(pager)

	page, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, "", 20)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	page, err = svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, page.NextCursor, 20)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(page.Items) != 20 {
		t.Fatalf("len = %d, want 20", len(page.Items))
	}
	// The probe row is missing, so the final full page already reports the end.
	if page.NextCursor != "" {
		t.Error("NextCursor should be empty on the final full page")
	}
}

func TestListPage_ProbesOnePastLimit(t *testing.T) {
	pager := &mockPager{sorted: newestCatalog(5)}
	svc := New(pager)

	if _, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, "", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pager.lastLimit != 21 {
		t.Errorf("backend limit = %d, want 21", pager.lastLimit)
	}
}

func TestListPage_CursorIdempotent(t *testing.T) {
	pager := &mockPager{sorted: newestCatalog(45)}
	svc := New(pager)

	first, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, "", 20)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}

	a, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, first.NextCursor, 20)
	if err != nil {
		t.Fatalf("replay 1: %v", err)
	}
	b, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, first.NextCursor, 20)
	if err != nil {
		t.Fatalf("replay 2: %v", err)
	}
	if len(a.Items) != len(b.Items) || a.NextCursor != b.NextCursor {
		t.Fatal("same cursor must yield the same page")
	}
	for i := range a.Items {
		if a.Items[i].ID != b.Items[i].ID {
			t.Errorf("item %d differs: %s vs %s", i, a.Items[i].ID, b.Items[i].ID)
		}
	}
}

func TestListPage_DefaultsAndClamps(t *testing.T) {
	pager := &mockPager{sorted: newestCatalog(300)}
	svc := New(pager)

	page, err := svc.ListPage(context.Background(), browse.Filters{}, "", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != DefaultPageSize {
		t.Errorf("default page size = %d, want %d", len(page.Items), DefaultPageSize)
	}

	page, err = svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, "", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != MaxPageSize {
		t.Errorf("clamped page size = %d, want %d", len(page.Items), MaxPageSize)
	}
}

func TestListPage_InvalidSort(t *testing.T) {
	svc := New(&mockPager{})

	page, err := svc.ListPage(context.Background(), browse.Filters{}, "popularity", "", 20)
	if !errors.Is(err, domain.ErrInvalidSort) {
		t.Fatalf("error = %v, want ErrInvalidSort", err)
	}
	if page.Items == nil {
		t.Error("Items is nil, want empty slice")
	}
}

func TestListPage_BadCursorEndsStream(t *testing.T) {
	pager := &mockPager{sorted: newestCatalog(45)}
	svc := New(pager)

	for _, cursor := range []string{"garbage!!!", "aGVsbG8"} {
		page, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, cursor, 20)
		if err != nil {
			t.Fatalf("cursor %q: unexpected error: %v", cursor, err)
		}
		if len(page.Items) != 0 || page.NextCursor != "" {
			t.Errorf("cursor %q: want empty terminal page", cursor)
		}
	}
}

func TestListPage_OutOfScopeCursorEndsStream(t *testing.T) {
	pager := &mockPager{sorted: newestCatalog(45)}
	svc := New(pager)

	first, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, "", 20)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}

	// Same cursor replayed under another sort or filters terminates cleanly.
	page, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortPriceAsc, first.NextCursor, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 || page.NextCursor != "" {
		t.Error("sort switch: want empty terminal page")
	}

	page, err = svc.ListPage(
		context.Background(), browse.Filters{CategorySlug: "masaj"}, browse.SortNewest, first.NextCursor, 20,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 || page.NextCursor != "" {
		t.Error("filter switch: want empty terminal page")
	}
}

func TestListPage_StoreError(t *testing.T) {
	pager := &mockPager{err: errors.New("connection refused")}
	svc := New(pager)

	page, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, "", 20)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
	if page.Items == nil {
		t.Error("Items is nil, want empty slice")
	}
}

func TestListPage_WithPagination(t *testing.T) {
	pager := &mockPager{sorted: newestCatalog(30)}
	svc := New(pager).WithPagination(5, 10)

	page, err := svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 5 {
		t.Errorf("default = %d, want 5", len(page.Items))
	}

	page, err = svc.ListPage(context.Background(), browse.Filters{}, browse.SortNewest, "", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 10 {
		t.Errorf("clamped = %d, want 10", len(page.Items))
	}
}
