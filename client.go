package katalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/muratgulerr33/katalog-api/internal/domain/browse"
	domcat "github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	catalogrepo "github.com/muratgulerr33/katalog-api/internal/repository/catalog"
	"github.com/muratgulerr33/katalog-api/internal/store"
	storePostgres "github.com/muratgulerr33/katalog-api/internal/store/postgres"
	storeRedis "github.com/muratgulerr33/katalog-api/internal/store/redis"
	browseuc "github.com/muratgulerr33/katalog-api/internal/usecase/browse"
	healthuc "github.com/muratgulerr33/katalog-api/internal/usecase/health"
	searchuc "github.com/muratgulerr33/katalog-api/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// ErrLoadInFlight is returned by LoadMore when a page request is already
// outstanding for the feed.
var ErrLoadInFlight = errors.New("katalog: page load already in flight")

// Internal interfaces so tests can substitute the services.
type searchUseCase interface {
	Search(ctx context.Context, query string, limit int) (searchuc.Response, error)
	Categories(ctx context.Context) ([]domcat.Category, error)
}

type browseUseCase interface {
	ListPage(
		ctx context.Context, filters browse.Filters, sort browse.Sort, cursor string, limit int,
	) (browseuc.Page, error)
}

// Options configures an embedded client.
type Options struct {
	// Driver selects the catalog store backend: "postgres" (default) or "redis".
	Driver string
	// DSN is the postgres connection string.
	DSN string
	// Addrs are the redis addresses.
	Addrs []string
	// Password is the redis password.
	Password string
	// ReadinessTimeout bounds the initial connectivity wait. Zero means 10s.
	ReadinessTimeout time.Duration
}

// Client is the katalog embedded client entry point.
type Client struct {
	store     store.Store
	searchSvc searchUseCase
	browseSvc browseUseCase
	healthSvc *healthuc.Service
}

// NewClient connects to the catalog store and wires the query engine the same
// way the API server does.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var (
		st  store.Store
		err error
	)
	switch opts.Driver {
	case "", "postgres":
		st, err = storePostgres.NewStore(storePostgres.Config{DSN: opts.DSN})
	case "redis":
		st, err = storeRedis.NewStore(storeRedis.Config{
			Addrs:    opts.Addrs,
			Password: opts.Password,
		})
	default:
		return nil, fmt.Errorf("unknown driver %q", opts.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	timeout := opts.ReadinessTimeout
	if timeout <= 0 {
		timeout = defaultReadinessTimeout
	}
	if err := st.WaitForReady(ctx, timeout); err != nil {
		st.Close()
		return nil, fmt.Errorf("wait for store: %w", err)
	}

	repo := catalogrepo.New(st)
	return &Client{
		store:     st,
		searchSvc: searchuc.New(repo),
		browseSvc: browseuc.New(repo),
		healthSvc: healthuc.New(st),
	}, nil
}

// Close releases the store connection.
func (c *Client) Close() {
	c.store.Close()
}

// Search runs a free-text catalog query. The result is always well-formed,
// even alongside an error.
func (c *Client) Search(ctx context.Context, query string, limit int) (SearchResult, error) {
	resp, err := c.searchSvc.Search(ctx, query, limit)
	return searchResultFromInternal(resp), err
}

// ListPage returns one catalog page under (filters, sort) after cursor.
func (c *Client) ListPage(ctx context.Context, filters Filters, sort Sort, cursor string, limit int) (Page, error) {
	page, err := c.browseSvc.ListPage(ctx, browse.Filters{
		CategorySlug: filters.CategorySlug,
		InStockOnly:  filters.InStockOnly,
	}, sort, cursor, limit)
	if err != nil {
		return Page{Items: []Product{}}, err
	}
	return pageFromInternal(page), nil
}

// Categories lists the catalog's categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	cats, err := c.searchSvc.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryFromInternal(cat))
	}
	return out, nil
}

// LoadMore fetches the feed's next page and merges it in. Returns the number
// of items actually appended. A second call while one is outstanding returns
// ErrLoadInFlight; calling after exhaustion is a no-op.
func (c *Client) LoadMore(ctx context.Context, feed *Feed, filters Filters, sort Sort, limit int) (int, error) {
	if feed.Exhausted() {
		return 0, nil
	}
	if !feed.BeginLoad() {
		return 0, ErrLoadInFlight
	}
	defer feed.EndLoad()

	page, err := c.ListPage(ctx, filters, sort, feed.Cursor(), limit)
	if err != nil {
		return 0, err
	}
	return feed.Merge(page), nil
}

// Healthy reports whether the catalog store responds.
func (c *Client) Healthy(ctx context.Context) bool {
	return c.healthSvc.Check(ctx).Status == healthuc.Healthy
}
