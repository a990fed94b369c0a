// Package postgres implements the catalog store contract over PostgreSQL
// using database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
	"github.com/muratgulerr33/katalog-api/internal/store"
)

// Compile-time check: Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Config holds connection parameters for a PostgreSQL store.
type Config struct {
	DSN string
}

// Store reads the catalog schema owned by the storefront's write side.
type Store struct {
	db *sql.DB
}

// NewStore opens a connection pool. Connectivity is verified by WaitForReady,
// not here.
func NewStore(cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	db, err := sql.Open("pgx", stdlib.RegisterConnConfig(connConfig))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &store.Error{Op: store.OpPing, Err: err}
	}
	return nil
}

// Close shuts down the pool.
func (s *Store) Close() {
	_ = s.db.Close()
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
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// ListProducts returns a bounded, ordered slice of published product rows.
// Cursor range filtering uses a keyset tuple comparison so pages stay stable
// and identical cursors always yield identical pages.
func (s *Store) ListProducts(ctx context.Context, q store.ProductQuery) ([]store.ProductRow, error) {
	query, args, err := buildProductQuery(q)
	if err != nil {
		return nil, &store.Error{Op: store.OpListProducts, Err: err}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &store.Error{Op: store.OpListProducts, Err: err}
	}
	defer rows.Close()

	var out []store.ProductRow
	for rows.Next() {
		var (
			r     store.ProductRow
			price sql.NullInt64
			image sql.NullString
			cats  string
		)
		err := rows.Scan(&r.ID, &r.Name, &r.Slug, &price, &image, &r.Stock, &cats, &r.CreatedAtMs)
		if err != nil {
			return nil, &store.Error{Op: store.OpListProducts, Err: err}
		}
		if price.Valid {
			p := price.Int64
			r.PriceMinor = &p
		}
		if image.Valid {
			r.ImageJSON = []byte(image.String)
		}
		r.CategorySlugs = parseTextArray(cats)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.Error{Op: store.OpListProducts, Err: err}
	}
	return out, nil
}

// ListCategories returns up to limit category rows in name order.
func (s *Store) ListCategories(ctx context.Context, limit int) ([]store.CategoryRow, error) {
	query := `
		SELECT category_id, name, slug, image
		FROM categories
		ORDER BY name ASC, category_id ASC
		LIMIT $1;`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, &store.Error{Op: store.OpListCategories, Err: err}
	}
	defer rows.Close()

	var out []store.CategoryRow
	for rows.Next() {
		var (
			r     store.CategoryRow
			image sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Slug, &image); err != nil {
			return nil, &store.Error{Op: store.OpListCategories, Err: err}
		}
		if image.Valid {
			r.ImageJSON = []byte(image.String)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.Error{Op: store.OpListCategories, Err: err}
	}
	return out, nil
}

// sortColumn maps a sort to its key expression. A missing price sorts as zero
// so the cursor key and the SQL order agree.
func sortColumn(s browse.Sort) string {
	switch s {
	case browse.SortPriceAsc, browse.SortPriceDesc:
		return "COALESCE(price_minor, 0)"
	case browse.SortNameAsc:
		return "name"
	default:
		return "created_at_ms"
	}
}

func buildProductQuery(q store.ProductQuery) (string, []any, error) {
	if q.Limit <= 0 {
		return "", nil, fmt.Errorf("limit must be positive, got %d", q.Limit)
	}
	if !q.Sort.IsValid() {
		return "", nil, fmt.Errorf("unknown sort %q", q.Sort)
	}

	var (
		conds = []string{"published"}
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if q.InStockOnly {
		conds = append(conds, "stock = "+arg("instock"))
	}
	if q.CategorySlug != "" {
		conds = append(conds, arg(q.CategorySlug)+" = ANY(category_slugs)")
	}

	key := sortColumn(q.Sort)
	dir := "ASC"
	cmpOp := ">"
	if q.Sort.Descending() {
		dir = "DESC"
		cmpOp = "<"
	}

	if q.After != nil {
		var keyArg string
		if q.Sort == browse.SortNameAsc {
			keyArg = arg(q.After.Key)
		} else {
			n, err := strconv.ParseInt(q.After.Key, 10, 64)
			if err != nil {
				return "", nil, fmt.Errorf("numeric cursor key %q: %w", q.After.Key, err)
			}
			keyArg = arg(n)
		}
		conds = append(conds, fmt.Sprintf("(%s, product_id) %s (%s, %s)", key, cmpOp, keyArg, arg(q.After.ID)))
	}

	query := fmt.Sprintf(`
		SELECT product_id, name, slug, price_minor, image, stock, category_slugs, created_at_ms
		FROM products
		WHERE %s
		ORDER BY %s %s, product_id %s
		LIMIT %s;`,
		strings.Join(conds, " AND "), key, dir, dir, arg(q.Limit),
	)
	return query, args, nil
}

// parseTextArray unpacks a postgres text[] literal like {a,b,c}.
func parseTextArray(s string) []string {
	trimmed := strings.Trim(s, "{}")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(p, `"`)
	}
	return parts
}
