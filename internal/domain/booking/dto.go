package booking

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CreateBookingRequest is the submission payload for POST /bookings.
type CreateBookingRequest struct {
	GuestName       string  `json:"guest_name" validate:"required,min=2,max=255"`
	GuestEmail      string  `json:"guest_email" validate:"required,email"`
	GuestPhone      string  `json:"guest_phone,omitempty" validate:"omitempty,min=7,max=20"`
	CheckInDate     string  `json:"check_in_date" validate:"required,dateonly"`
	CheckOutDate    string  `json:"check_out_date" validate:"required,dateonly"`
	Adults          int     `json:"adults" validate:"required,gte=1,lte=20"`
	Children        int     `json:"children" validate:"gte=0,lte=20"`
	AccommodationID int64   `json:"accommodation_id" validate:"required,gt=0"`
	Rooms           int     `json:"rooms" validate:"required,gte=1,lte=20"`
	MealPlanID      int64   `json:"meal_plan_id,omitempty" validate:"omitempty,gt=0"`
	Activities      []int64 `json:"activities,omitempty"`
	CouponCode      string  `json:"coupon_code,omitempty" validate:"omitempty,couponcode"`

	// TotalAmount is accepted for wire compatibility with the booking
	// form but the server recomputes the price; the client value is
	// never trusted.
	TotalAmount float64 `json:"total_amount,omitempty"`
}

// toSelection converts the request into a Selection. Dates must have been
// validated already; unparseable dates come out as zero times.
func (r *CreateBookingRequest) toSelection() Selection {
	checkIn, _ := time.Parse(dateLayout, r.CheckInDate)
	checkOut, _ := time.Parse(dateLayout, r.CheckOutDate)

	// Deduplicate activities, preserving order
	seen := make(map[int64]bool, len(r.Activities))
	var activities []int64
	for _, id := range r.Activities {
		if !seen[id] {
			seen[id] = true
			activities = append(activities, id)
		}
	}

	return Selection{
		AccommodationID: r.AccommodationID,
		Rooms:           r.Rooms,
		MealPlanID:      r.MealPlanID,
		ActivityIDs:     activities,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          r.Adults,
		Children:        r.Children,
		CouponCode:      r.CouponCode,
	}
}

// CheckAvailabilityRequest for POST /check-availability.
type CheckAvailabilityRequest struct {
	AccommodationID int64  `json:"accommodation_id"`
	CheckInDate     string `json:"check_in_date" validate:"omitempty,dateonly"`
	CheckOutDate    string `json:"check_out_date" validate:"omitempty,dateonly"`
	Rooms           int    `json:"rooms" validate:"omitempty,gte=1,lte=20"`
}

// ValidateCouponRequest for POST /coupons/validate.
type ValidateCouponRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// BookingSubmittedResponse is the public confirmation payload.
type BookingSubmittedResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	GuestEmail string    `json:"guest_email"`
}

// AvailabilityResponse for POST /check-availability.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// CouponResponse for POST /coupons/validate.
type CouponResponse struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
}

// BookingResponse is the full booking view for admin listings and the
// live feed.
type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone,omitempty"`
	AccommodationID int64     `json:"accommodation_id"`
	Rooms           int       `json:"rooms"`
	MealPlanID      int64     `json:"meal_plan_id,omitempty"`
	Activities      []int64   `json:"activities,omitempty"`
	CheckInDate     string    `json:"check_in_date"`
	CheckOutDate    string    `json:"check_out_date"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	CouponCode      string    `json:"coupon_code,omitempty"`
	DiscountPercent float64   `json:"discount_percent"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status"`
	CreatedAt       string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(b *Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		AccommodationID: b.AccommodationID,
		Rooms:           b.Rooms,
		Activities:      []int64(b.ActivityIDs),
		CheckInDate:     b.CheckIn.Format(dateLayout),
		CheckOutDate:    b.CheckOut.Format(dateLayout),
		Adults:          b.Adults,
		Children:        b.Children,
		DiscountPercent: b.DiscountPercent,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}

	if b.GuestPhone.Valid {
		resp.GuestPhone = b.GuestPhone.String
	}
	if b.MealPlanID.Valid {
		resp.MealPlanID = b.MealPlanID.Int64
	}
	if b.CouponCode.Valid {
		resp.CouponCode = b.CouponCode.String
	}

	return resp
}
