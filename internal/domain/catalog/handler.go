package catalog

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/pkg/response"
)

// Handler handles catalog HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates catalog handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListAccommodations handles GET /accommodations
func (h *Handler) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Accommodations(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list accommodations")
		response.InternalError(w)
		return
	}

	out := make([]*AccommodationResponse, len(items))
	for i := range items {
		out[i] = ToAccommodationResponse(&items[i])
	}
	response.OK(w, out)
}

// ListMealPlans handles GET /meal-plans
func (h *Handler) ListMealPlans(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.MealPlans(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list meal plans")
		response.InternalError(w)
		return
	}

	out := make([]*MealPlanResponse, len(items))
	for i := range items {
		out[i] = ToMealPlanResponse(&items[i])
	}
	response.OK(w, out)
}

// ListActivities handles GET /activities
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Activities(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list activities")
		response.InternalError(w)
		return
	}

	out := make([]*ActivityResponse, len(items))
	for i := range items {
		out[i] = ToActivityResponse(&items[i])
	}
	response.OK(w, out)
}
