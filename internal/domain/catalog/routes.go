package catalog

import (
	"github.com/go-chi/chi/v5"
)

// Register adds the public catalog routes onto r (mounted at /api/v1)
func (h *Handler) Register(r chi.Router) {
	r.Get("/accommodations", h.ListAccommodations)
	r.Get("/meal-plans", h.ListMealPlans)
	r.Get("/activities", h.ListActivities)
}
