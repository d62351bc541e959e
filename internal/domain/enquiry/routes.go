package enquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register adds the public contact form route onto r (mounted at /api/v1)
func (h *Handler) Register(r chi.Router) {
	r.Post("/enquiries", h.Create)
}

// AdminRoutes returns enquiry management routes
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Patch("/status", h.UpdateStatus)
	})

	return r
}
