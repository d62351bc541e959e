package catalog

import "github.com/lib/pq"

// Accommodation is a bookable lodging unit. Price is per night, per room.
type Accommodation struct {
	ID              int64          `db:"id" json:"id"`
	Type            string         `db:"type" json:"type"`
	Title           string         `db:"title" json:"title"`
	Description     string         `db:"description" json:"description"`
	Price           float64        `db:"price" json:"price"`
	Capacity        int            `db:"capacity" json:"capacity"`
	Features        pq.StringArray `db:"features" json:"features"`
	ImageURL        string         `db:"image_url" json:"image_url"`
	HasAC           bool           `db:"has_ac" json:"has_ac"`
	HasAttachedBath bool           `db:"has_attached_bath" json:"has_attached_bath"`
	AvailableRooms  int            `db:"available_rooms" json:"available_rooms"`
	Available       bool           `db:"available" json:"available"`
}

// MealPlan is priced per person per stay.
type MealPlan struct {
	ID          int64          `db:"id" json:"id"`
	Type        string         `db:"type" json:"type"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	Price       float64        `db:"price" json:"price"`
	Includes    pq.StringArray `db:"includes" json:"includes"`
	Available   bool           `db:"available" json:"available"`
}

// Activity is priced per person. MaxParticipants of 0 means no cap.
type Activity struct {
	ID              int64   `db:"id" json:"id"`
	Title           string  `db:"title" json:"title"`
	Description     string  `db:"description" json:"description"`
	Price           float64 `db:"price" json:"price"`
	ImageURL        string  `db:"image_url" json:"image_url"`
	Duration        string  `db:"duration" json:"duration"`
	MaxParticipants int     `db:"max_participants" json:"max_participants"`
	Available       bool    `db:"available" json:"available"`
}

// Snapshot is a read-only view of the whole catalog keyed by id,
// used by the booking price calculator.
type Snapshot struct {
	Accommodations map[int64]Accommodation
	MealPlans      map[int64]MealPlan
	Activities     map[int64]Activity
}
