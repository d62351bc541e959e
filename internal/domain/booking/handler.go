package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/pkg/response"
	"github.com/plumeria/retreat-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc      *Service
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler creates booking handler. hub may be nil when the feed is
// not exposed (tests).
func NewHandler(svc *Service, hub *Hub, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &Handler{
		svc: svc,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin] || allowed["*"]
			},
		},
	}
}

// Create handles POST /bookings (public)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.SubmitBooking(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(w, http.StatusBadRequest, "MISSING_FIELDS", "Guest name, email, dates and accommodation are required")
		case errors.Is(err, ErrInvalidDateRange):
			response.Error(w, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-in must not be in the past and must not follow check-out")
		case errors.Is(err, ErrUnavailable):
			response.Conflict(w, "UNAVAILABLE", "The selected accommodation is not available for the requested dates")
		default:
			log.Error().Err(err).Msg("Failed to create booking")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, &BookingSubmittedResponse{
		BookingID:  b.ID,
		GuestEmail: b.GuestEmail,
	})
}

// CheckAvailability handles POST /check-availability (public)
func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	available := h.svc.CheckAvailability(r.Context(), &req)
	response.OK(w, &AvailabilityResponse{Available: available})
}

// ValidateCoupon handles POST /coupons/validate (public)
func (h *Handler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req ValidateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result := h.svc.ValidateCoupon(r.Context(), req.Code)
	response.OK(w, &CouponResponse{Valid: result.Valid, Discount: result.Discount})
}

// List handles GET /admin/bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	bookings, total, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list bookings")
		response.InternalError(w)
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = ToResponse(b)
	}

	response.WithMeta(w, items, response.Meta{Total: total, Limit: limit, Offset: offset})
}

// GetByID handles GET /admin/bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get booking")
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(b))
}

// Cancel handles PATCH /admin/bookings/{id}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, ErrAlreadyCancelled):
			response.BadRequest(w, "Booking is already cancelled")
		default:
			log.Error().Err(err).Msg("Failed to cancel booking")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"status": "cancelled"})
}

// Feed handles the admin WebSocket upgrade for the live booking feed.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		response.NotFound(w, "Feed not enabled")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Booking feed upgrade failed")
		return
	}

	h.hub.Attach(conn)
}
