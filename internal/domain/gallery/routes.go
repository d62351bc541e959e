package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register adds the public gallery route onto r (mounted at /api/v1)
func (h *Handler) Register(r chi.Router) {
	r.Get("/gallery", h.List)
}

// AdminRoutes returns gallery management routes
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Post("/", h.Upload)
	r.Delete("/{id}", h.Delete)

	return r
}
