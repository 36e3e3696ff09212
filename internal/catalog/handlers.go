package catalog

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"feed-catalog/internal/apperr"
	"feed-catalog/internal/http/respond"
)

const (
	featuredCount = 3
	relatedCount  = 3
)

var errProductNotFound = apperr.New(apperr.CodeNotFound, "product not found")

// Handler handles HTTP requests for catalog operations
type Handler struct {
	catalog *Catalog
}

// NewHandler creates a new catalog handler
func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// Register mounts the read-only catalog routes.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/products", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/featured", h.FeaturedProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", h.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}/related", h.RelatedProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", h.ListCategories).Methods(http.MethodGet)
}

// ListProducts handles GET /api/products?q=&category=&sort=
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := h.parseQuery(r)
	products := Filter(h.catalog.All(), q)

	respond.OK(w, ProductListResponse{
		Products: products,
		Total:    h.catalog.Len(),
		Shown:    len(products),
		Query:    q,
	})
}

func (h *Handler) parseQuery(r *http.Request) Query {
	values := r.URL.Query()

	category := values.Get("category")
	if category == "" {
		// footer links use ?type=cattle
		category = values.Get("type")
	}
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		category = AllCategories
	} else {
		category = h.catalog.CanonicalCategory(category)
	}

	sort := SortKey(values.Get("sort"))
	if sort == "" {
		sort = SortNameAsc
	}

	return Query{
		Search:   values.Get("q"),
		Category: category,
		Sort:     sort,
	}
}

// GetProduct handles GET /api/products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, ok := h.catalog.ByID(id)
	if !ok {
		respond.Error(w, r, errProductNotFound)
		return
	}
	related, _ := h.catalog.Related(id, relatedCount)

	respond.OK(w, ProductDetailResponse{Product: product, Related: related})
}

// RelatedProducts handles GET /api/products/{id}/related
func (h *Handler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	related, ok := h.catalog.Related(mux.Vars(r)["id"], relatedCount)
	if !ok {
		respond.Error(w, r, errProductNotFound)
		return
	}
	respond.OK(w, map[string]any{"products": related})
}

// FeaturedProducts handles GET /api/products/featured
func (h *Handler) FeaturedProducts(w http.ResponseWriter, _ *http.Request) {
	respond.OK(w, map[string]any{"products": h.catalog.Featured(featuredCount)})
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	respond.OK(w, map[string]any{"categories": h.catalog.Categories()})
}
