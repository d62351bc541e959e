package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	List(ctx context.Context, limit, offset int) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	// CountOverlappingRooms sums rooms of confirmed bookings whose stay
	// overlaps [checkIn, checkOut) for the given accommodation.
	CountOverlappingRooms(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, guest_name, guest_email, guest_phone,
			accommodation_id, rooms, meal_plan_id, activity_ids,
			check_in, check_out, adults, children,
			coupon_code, discount_percent, total_amount, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16,
			$17, $18
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.GuestName, b.GuestEmail, b.GuestPhone,
		b.AccommodationID, b.Rooms, b.MealPlanID, b.ActivityIDs,
		b.CheckIn, b.CheckOut, b.Adults, b.Children,
		b.CouponCode, b.DiscountPercent, b.TotalAmount, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT * FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]*Booking, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings`); err != nil {
		return nil, 0, err
	}

	var items []*Booking
	err := r.db.SelectContext(ctx, &items, `
		SELECT * FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) CountOverlappingRooms(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (int, error) {
	var booked int
	err := r.db.GetContext(ctx, &booked, `
		SELECT COALESCE(SUM(rooms), 0)
		FROM bookings
		WHERE accommodation_id = $1
		  AND status = 'confirmed'
		  AND check_in < $3
		  AND check_out > $2
	`, accommodationID, checkIn, checkOut)
	return booked, err
}
