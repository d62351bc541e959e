package booking

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ConfirmationSender delivers the booking confirmation to the guest.
type ConfirmationSender interface {
	SendBookingConfirmation(ctx context.Context, b *Booking) error
}

// Service runs the booking flow: preconditions, availability guard,
// server-side coupon revalidation, price computation, persistence.
type Service struct {
	repo    Repository
	catalog CatalogSource
	coupons CouponValidator
	checker *AvailabilityChecker
	feed    *Hub
	mailer  ConfirmationSender
}

// NewService creates booking service. feed and mailer may be nil.
func NewService(repo Repository, catalogSrc CatalogSource, coupons CouponValidator, checker *AvailabilityChecker, feed *Hub, mailer ConfirmationSender) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogSrc,
		coupons: coupons,
		checker: checker,
		feed:    feed,
		mailer:  mailer,
	}
}

// SubmitBooking validates and persists a reservation.
//
// Precondition violations fail locally before any repository or catalog
// access. The availability guard is fail-closed: an error from it reads
// as unavailable. An invalid or unverifiable coupon drops the discount
// but never blocks the booking.
func (s *Service) SubmitBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.TrimSpace(req.GuestEmail)

	if req.GuestName == "" || req.GuestEmail == "" ||
		req.CheckInDate == "" || req.CheckOutDate == "" ||
		req.AccommodationID == 0 {
		return nil, ErrMissingFields
	}

	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if checkOut.Before(checkIn) {
		return nil, ErrInvalidDateRange
	}
	// ISO dates compare lexicographically
	if req.CheckInDate < time.Now().Format(dateLayout) {
		return nil, ErrInvalidDateRange
	}

	sel := req.toSelection()

	available, err := s.checker.Check(ctx, sel.AccommodationID, checkIn, checkOut, sel.Rooms)
	if err != nil {
		log.Error().Err(err).Int64("accommodation_id", sel.AccommodationID).Msg("Availability check failed")
		return nil, ErrUnavailable
	}
	if !available {
		return nil, ErrUnavailable
	}

	if sel.CouponCode != "" {
		result := s.coupons.Validate(ctx, sel.CouponCode)
		if result.Valid {
			sel.DiscountPercent = result.Discount
		} else {
			sel.CouponCode = ""
		}
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	total := ComputeTotal(snap, sel)

	now := time.Now()
	b := &Booking{
		ID:              uuid.New(),
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		AccommodationID: sel.AccommodationID,
		Rooms:           sel.Rooms,
		ActivityIDs:     sel.ActivityIDs,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          sel.Adults,
		Children:        sel.Children,
		DiscountPercent: sel.DiscountPercent,
		TotalAmount:     total,
		Status:          StatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if phone := strings.TrimSpace(req.GuestPhone); phone != "" {
		b.GuestPhone = sql.NullString{String: phone, Valid: true}
	}
	if sel.MealPlanID != 0 {
		b.MealPlanID = sql.NullInt64{Int64: sel.MealPlanID, Valid: true}
	}
	if sel.CouponCode != "" {
		b.CouponCode = sql.NullString{String: sel.CouponCode, Valid: true}
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.feed.Publish(EventBookingCreated, ToResponse(b))
	s.sendConfirmation(b)

	return b, nil
}

// CheckAvailability exposes the availability guard to the HTTP layer.
func (s *Service) CheckAvailability(ctx context.Context, req *CheckAvailabilityRequest) bool {
	checkIn, _ := time.Parse(dateLayout, req.CheckInDate)
	checkOut, _ := time.Parse(dateLayout, req.CheckOutDate)

	available, err := s.checker.Check(ctx, req.AccommodationID, checkIn, checkOut, req.Rooms)
	if err != nil {
		log.Error().Err(err).Int64("accommodation_id", req.AccommodationID).Msg("Availability check failed")
		return false
	}
	return available
}

// ValidateCoupon exposes coupon validation to the HTTP layer.
func (s *Service) ValidateCoupon(ctx context.Context, code string) CouponResult {
	return s.coupons.Validate(ctx, code)
}

// GetByID returns a booking or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// List returns bookings, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Booking, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Cancel marks a booking cancelled, freeing its rooms.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}

	b.Status = StatusCancelled
	s.feed.Publish(EventBookingCancelled, ToResponse(b))
	return nil
}

// sendConfirmation emails the guest in the background, best effort.
func (s *Service) sendConfirmation(b *Booking) {
	if s.mailer == nil {
		return
	}
	booking := *b
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.mailer.SendBookingConfirmation(ctx, &booking); err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("Failed to send booking confirmation email")
		}
	}()
}
