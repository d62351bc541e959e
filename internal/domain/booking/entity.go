package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status of a booking
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Selection is the set of choices a guest has made for one stay.
// Zero ids mean "nothing chosen"; unresolved ids price at zero.
type Selection struct {
	AccommodationID int64
	Rooms           int
	MealPlanID      int64
	ActivityIDs     []int64
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	CouponCode      string
	DiscountPercent float64
}

// Guests returns the headcount meal plans and activities are priced by.
func (s Selection) Guests() int {
	return s.Adults + s.Children
}

// Booking is a confirmed reservation.
type Booking struct {
	ID              uuid.UUID      `db:"id"`
	GuestName       string         `db:"guest_name"`
	GuestEmail      string         `db:"guest_email"`
	GuestPhone      sql.NullString `db:"guest_phone"`
	AccommodationID int64          `db:"accommodation_id"`
	Rooms           int            `db:"rooms"`
	MealPlanID      sql.NullInt64  `db:"meal_plan_id"`
	ActivityIDs     pq.Int64Array  `db:"activity_ids"`
	CheckIn         time.Time      `db:"check_in"`
	CheckOut        time.Time      `db:"check_out"`
	Adults          int            `db:"adults"`
	Children        int            `db:"children"`
	CouponCode      sql.NullString `db:"coupon_code"`
	DiscountPercent float64        `db:"discount_percent"`
	TotalAmount     float64        `db:"total_amount"`
	Status          Status         `db:"status"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}
