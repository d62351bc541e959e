package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plumeria/retreat-api/internal/pkg/response"
)

// Handler serves the static site content
type Handler struct{}

// NewHandler creates content handler
func NewHandler() *Handler {
	return &Handler{}
}

// Nav handles GET /content/nav
func (h *Handler) Nav(w http.ResponseWriter, r *http.Request) {
	response.OK(w, navItems)
}

// Testimonials handles GET /content/testimonials
func (h *Handler) Testimonials(w http.ResponseWriter, r *http.Request) {
	response.OK(w, testimonials)
}

// FAQs handles GET /content/faqs
func (h *Handler) FAQs(w http.ResponseWriter, r *http.Request) {
	response.OK(w, faqs)
}

// Nearby handles GET /content/nearby
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	response.OK(w, nearbyLocations)
}

// Routes returns content routes, mounted at /api/v1/content
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/nav", h.Nav)
	r.Get("/testimonials", h.Testimonials)
	r.Get("/faqs", h.FAQs)
	r.Get("/nearby", h.Nearby)

	return r
}
