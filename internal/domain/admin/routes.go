package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns admin auth routes, mounted at /api/v1/admin
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/me", h.Me)
	})

	return r
}
