package catalog

// AccommodationResponse is the public wire shape for an accommodation.
type AccommodationResponse struct {
	ID             int64    `json:"id"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Capacity       int      `json:"capacity"`
	AvailableRooms int      `json:"available_rooms"`
	Amenities      []string `json:"amenities"`
	ImageURL       string   `json:"image_url"`
	Available      bool     `json:"available"`
}

// MealPlanResponse is the public wire shape for a meal plan.
type MealPlanResponse struct {
	ID          int64    `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Includes    []string `json:"includes"`
	Available   bool     `json:"available"`
}

// ActivityResponse is the public wire shape for an activity.
type ActivityResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"image_url"`
	Duration        string  `json:"duration"`
	MaxParticipants int     `json:"max_participants,omitempty"`
	Available       bool    `json:"available"`
}

// ToAccommodationResponse converts entity to response
func ToAccommodationResponse(a *Accommodation) *AccommodationResponse {
	return &AccommodationResponse{
		ID:             a.ID,
		Type:           a.Type,
		Title:          a.Title,
		Description:    a.Description,
		Price:          a.Price,
		Capacity:       a.Capacity,
		AvailableRooms: a.AvailableRooms,
		Amenities:      []string(a.Features),
		ImageURL:       a.ImageURL,
		Available:      a.Available,
	}
}

// ToMealPlanResponse converts entity to response
func ToMealPlanResponse(m *MealPlan) *MealPlanResponse {
	return &MealPlanResponse{
		ID:          m.ID,
		Type:        m.Type,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Includes:    []string(m.Includes),
		Available:   m.Available,
	}
}

// ToActivityResponse converts entity to response
func ToActivityResponse(a *Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Price:           a.Price,
		ImageURL:        a.ImageURL,
		Duration:        a.Duration,
		MaxParticipants: a.MaxParticipants,
		Available:       a.Available,
	}
}
