// Package redis implements the catalog store contract over Redis hashes via
// rueidis. Products and categories live under katalog:product:<id> and
// katalog:category:<id>; ordering and cursor range filtering happen in memory
// over the bounded catalog scan.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/rueidis"

	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
	"github.com/muratgulerr33/katalog-api/internal/store"
)

// Compile-time check: Store implements store.Store.
var _ store.Store = (*Store)(nil)

const (
	productKeyPrefix  = "katalog:product:"
	categoryKeyPrefix = "katalog:category:"
)

// Config holds connection parameters for a Redis store.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store implements store.Store via rueidis.
type Store struct {
	client rueidis.Client
}

// NewStore creates a Redis-backed catalog store.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &Store{client: client}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &store.Error{Op: store.OpPing, Err: err}
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for store: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// ListProducts scans product hashes, applies eligibility and cursor range
// filters and returns rows in total sort order with an id tiebreak.
func (s *Store) ListProducts(ctx context.Context, q store.ProductQuery) ([]store.ProductRow, error) {
	if q.Limit <= 0 {
		return nil, &store.Error{Op: store.OpListProducts, Err: fmt.Errorf("limit must be positive, got %d", q.Limit)}
	}
	if !q.Sort.IsValid() {
		return nil, &store.Error{Op: store.OpListProducts, Err: fmt.Errorf("unknown sort %q", q.Sort)}
	}

	hashes, err := s.scanHashes(ctx, productKeyPrefix+"*")
	if err != nil {
		return nil, &store.Error{Op: store.OpListProducts, Err: err}
	}

	rows := make([]store.ProductRow, 0, len(hashes))
	for _, h := range hashes {
		row, ok := productRowFromHash(h)
		if !ok {
			continue
		}
		if q.InStockOnly && row.Stock != "instock" {
			continue
		}
		if q.CategorySlug != "" && !containsString(row.CategorySlugs, q.CategorySlug) {
			continue
		}
		rows = append(rows, row)
	}

	sortRows(rows, q.Sort)
	rows = afterKey(rows, q.Sort, q.After)
	if len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

// ListCategories returns up to limit category rows in name order.
func (s *Store) ListCategories(ctx context.Context, limit int) ([]store.CategoryRow, error) {
	hashes, err := s.scanHashes(ctx, categoryKeyPrefix+"*")
	if err != nil {
		return nil, &store.Error{Op: store.OpListCategories, Err: err}
	}

	rows := make([]store.CategoryRow, 0, len(hashes))
	for _, h := range hashes {
		if h["id"] == "" || h["name"] == "" {
			continue
		}
		rows = append(rows, store.CategoryRow{
			ID:        h["id"],
			Name:      h["name"],
			Slug:      h["slug"],
			ImageJSON: []byte(h["image"]),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// scanHashes walks SCAN over pattern and fetches every hash in one pipelined
// round-trip per SCAN page.
func (s *Store) scanHashes(ctx context.Context, pattern string) ([]map[string]string, error) {
	var out []map[string]string

	var cursor uint64
	for {
		cmd := s.client.B().Scan().Cursor(cursor).Match(pattern).Count(512).Build()
		entry, err := s.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &store.Error{Op: store.OpScan, Err: err}
		}

		if len(entry.Elements) > 0 {
			cmds := make([]rueidis.Completed, len(entry.Elements))
			for i, key := range entry.Elements {
				cmds[i] = s.client.B().Hgetall().Key(key).Build()
			}
			for i, res := range s.client.DoMulti(ctx, cmds...) {
				m, err := res.AsStrMap()
				if err != nil {
					return nil, &store.Error{Op: store.OpHGetAll, Err: fmt.Errorf("key %s: %w", entry.Elements[i], err)}
				}
				out = append(out, m)
			}
		}

		cursor = entry.Cursor
		if cursor == 0 {
			return out, nil
		}
	}
}

// productRowFromHash parses one product hash. Unpublished and malformed rows
// are skipped rather than failing the whole scan.
func productRowFromHash(h map[string]string) (store.ProductRow, bool) {
	if h["id"] == "" || h["name"] == "" || h["published"] != "1" {
		return store.ProductRow{}, false
	}

	row := store.ProductRow{
		ID:        h["id"],
		Name:      h["name"],
		Slug:      h["slug"],
		Stock:     h["stock"],
		ImageJSON: []byte(h["image"]),
	}
	if v := h["price_minor"]; v != "" {
		p, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return store.ProductRow{}, false
		}
		row.PriceMinor = &p
	}
	if v := h["created_at_ms"]; v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return store.ProductRow{}, false
		}
		row.CreatedAtMs = ms
	}
	if v := h["category_slugs"]; v != "" {
		if err := json.Unmarshal([]byte(v), &row.CategorySlugs); err != nil {
			return store.ProductRow{}, false
		}
	}
	return row, true
}

func sortRows(rows []store.ProductRow, s browse.Sort) {
	sort.SliceStable(rows, func(i, j int) bool {
		ki := s.KeyOf(rows[i].Name, rows[i].PriceMinor, rows[i].CreatedAtMs)
		kj := s.KeyOf(rows[j].Name, rows[j].PriceMinor, rows[j].CreatedAtMs)
		c := s.CompareKeys(ki, kj)
		if c == 0 {
			c = strings.Compare(rows[i].ID, rows[j].ID)
		}
		if s.Descending() {
			return c > 0
		}
		return c < 0
	})
}

// afterKey drops every row at or before the cursor position.
func afterKey(rows []store.ProductRow, s browse.Sort, after *browse.PageKey) []store.ProductRow {
	if after == nil {
		return rows
	}
	kept := rows[:0]
	for _, r := range rows {
		c := s.CompareKeys(s.KeyOf(r.Name, r.PriceMinor, r.CreatedAtMs), after.Key)
		if c == 0 {
			c = strings.Compare(r.ID, after.ID)
		}
		if s.Descending() {
			c = -c
		}
		if c > 0 {
			kept = append(kept, r)
		}
	}
	return kept
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
