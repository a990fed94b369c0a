// Package chi exposes the catalog query engine over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/muratgulerr33/katalog-api/internal/domain"
	dombrowse "github.com/muratgulerr33/katalog-api/internal/domain/browse"
	browseuc "github.com/muratgulerr33/katalog-api/internal/usecase/browse"
	healthuc "github.com/muratgulerr33/katalog-api/internal/usecase/health"
	searchuc "github.com/muratgulerr33/katalog-api/internal/usecase/search"
)

// Error codes returned in JSON error bodies.
const (
	codeBadRequest  = "bad_request"
	codeInvalidSort = "invalid_sort"
	codeUnavailable = "store_unavailable"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes catalog query requests to the use case services.
type Server struct {
	search        *searchuc.Service
	browse        *browseuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	browse *browseuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search: search,
		browse: browse,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidSort, http.StatusBadRequest, codeInvalidSort),
		sentinelHandler(domain.ErrUnavailable, http.StatusServiceUnavailable, codeUnavailable),
	}
	return s
}

// Register mounts the API routes.
func (s *Server) Register(r chirouter.Router) {
	r.Get("/health", s.Health)
	r.Route("/v1", func(r chirouter.Router) {
		r.Get("/search", s.Search)
		r.Get("/products", s.ListProducts)
		r.Get("/categories", s.ListCategories)
	})
}

// Search handles GET /v1/search?q=&limit=. A no-match or tokenless query is a
// normal 200 with the empty-shaped body, never an error.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, ok := intParam(w, r, "limit")
	if !ok {
		return
	}

	resp, err := s.search.Search(r.Context(), q, limit)
	if err != nil {
		// The empty-shaped body still renders; the status tells the caller
		// the store failed.
		s.logger.Warn("search failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, searchResponseToJSON(resp))
		return
	}

	writeJSON(w, http.StatusOK, searchResponseToJSON(resp))
}

// ListProducts handles GET /v1/products?category=&in_stock=&sort=&cursor=&limit=.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, ok := intParam(w, r, "limit")
	if !ok {
		return
	}

	inStock := false
	if v := query.Get("in_stock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "in_stock must be a boolean")
			return
		}
		inStock = b
	}

	filters := dombrowse.Filters{
		CategorySlug: query.Get("category"),
		InStockOnly:  inStock,
	}

	page, err := s.browse.ListPage(
		r.Context(), filters, dombrowse.Sort(query.Get("sort")), query.Get("cursor"), limit,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToJSON(page))
}

// ListCategories handles GET /v1/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.search.Categories(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]categoryJSON, 0, len(cats))
	for _, c := range cats {
		items = append(items, categoryToJSON(c))
	}
	writeJSON(w, http.StatusOK, categoryListJSON{Items: items})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToJSON(report))
}

// handleDomainError walks the sentinel chain, falling back to a 500.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err, err.Error()) {
			return
		}
	}
	s.logger.Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// intParam parses an optional non-negative integer query parameter. A missing
// parameter yields 0 (use-case default).
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorJSON{Code: code, Message: message})
}
