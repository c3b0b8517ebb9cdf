package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ikonnect/website/backend/internal/model/catalog"
	"github.com/ikonnect/website/backend/pkg/utils"
)

// Handler serves the read-only marketing content catalog.
type Handler struct {
	catalogs catalog.Store
}

// New creates the catalog handler.
func New(catalogs catalog.Store) *Handler {
	return &Handler{catalogs: catalogs}
}

// RegisterRoutes mounts the portfolio, testimonial and blog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/portfolio", h.handleListPortfolio)
	r.Get("/portfolio/{id}", h.handleGetPortfolioItem)
	r.Get("/testimonials", h.handleListTestimonials)
	r.Get("/blog", h.handleListBlogPosts)
	r.Get("/blog/{slug}", h.handleGetBlogPost)
}

func (h *Handler) handleListPortfolio(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	utils.RespondJSON(w, http.StatusOK, h.catalogs.Portfolio(featured))
}

func (h *Handler) handleGetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalogs.PortfolioItemByID(chi.URLParam(r, "id"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "portfolio item not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) handleListTestimonials(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	utils.RespondJSON(w, http.StatusOK, h.catalogs.Testimonials(featured))
}

func (h *Handler) handleListBlogPosts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalogs.BlogPosts(r.URL.Query().Get("category")))
}

func (h *Handler) handleGetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.catalogs.BlogPostBySlug(chi.URLParam(r, "slug"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "blog post not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, post)
}
