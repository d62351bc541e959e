package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register adds the guest-facing booking routes onto r (mounted at /api/v1)
func (h *Handler) Register(r chi.Router) {
	r.Post("/bookings", h.Create)
	r.Post("/check-availability", h.CheckAvailability)
	r.Post("/coupons/validate", h.ValidateCoupon)
}

// AdminRoutes returns booking management routes
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Patch("/cancel", h.Cancel)
	})

	return r
}
