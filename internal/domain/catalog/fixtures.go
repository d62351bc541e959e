package catalog

import "github.com/lib/pq"

// Fixtures carries the built-in catalog used when no database is
// configured, and as seed data for cmd/seed.
var Fixtures = struct {
	Accommodations []Accommodation
	MealPlans      []MealPlan
	Activities     []Activity
}{
	Accommodations: []Accommodation{
		{
			ID:              1,
			Type:            "AC Cottage",
			Title:           "Lake-View Cottage",
			Description:     "Our most luxurious accommodation featuring a private balcony with stunning lake views, modern amenities, and premium furnishings for the ultimate comfort.",
			Price:           199,
			Capacity:        4,
			Features:        pq.StringArray{"Lake view", "Private balcony", "Premium bedding", "Mini kitchen", "Free Wi-Fi"},
			ImageURL:        "https://images.pexels.com/photos/9144680/pexels-photo-9144680.jpeg",
			HasAC:           true,
			HasAttachedBath: true,
			AvailableRooms:  10,
			Available:       true,
		},
		{
			ID:              2,
			Type:            "Triangular Tent",
			Title:           "Spacious Triangular Tents",
			Description:     "Glamping at its finest with our spacious safari-style tents featuring real beds, beautiful furnishings, and all the comforts of home under canvas.",
			Price:           149,
			Capacity:        2,
			Features:        pq.StringArray{"Sleeping mats", "Campsite location", "Shared facilities", "Fire pit access", "Stargazing spot"},
			ImageURL:        "https://images.pexels.com/photos/6640068/pexels-photo-6640068.jpeg",
			HasAC:           false,
			HasAttachedBath: false,
			AvailableRooms:  10,
			Available:       true,
		},
		{
			ID:              3,
			Type:            "Normal Tent",
			Title:           "Backpacker's Tent",
			Description:     "Perfect for adventurous souls, our standard tents provide a comfortable yet authentic camping experience with all necessary basics.",
			Price:           69,
			Capacity:        2,
			Features:        pq.StringArray{"Queen bed", "Furnished deck", "Lantern lighting", "Rugs & furnishings", "Charging outlets"},
			ImageURL:        "https://images.pexels.com/photos/2526025/pexels-photo-2526025.jpeg",
			HasAC:           false,
			HasAttachedBath: false,
			AvailableRooms:  10,
			Available:       true,
		},
	},
	MealPlans: []MealPlan{
		{
			ID:          1,
			Type:        "MEP",
			Title:       "Meal Included Plan",
			Description: "Start and end your day with delicious, locally-sourced meals prepared by our skilled chefs. Perfect for guests who want to fully relax.",
			Price:       35,
			Includes:    pq.StringArray{"Hearty breakfast", "Three-course dinner", "Evening snacks", "Coffee & tea all day", "Special diet accommodation"},
			Available:   true,
		},
		{
			ID:          2,
			Type:        "EP",
			Title:       "No Meal Plan",
			Description: "Perfect for the independent traveler who prefers to self-cater or explore local dining options. Includes access to shared kitchen facilities.",
			Price:       0,
			Includes:    pq.StringArray{"Shared kitchen access", "Refrigerator space", "BBQ area usage", "Basic cooking supplies", "Local restaurant recommendations"},
			Available:   true,
		},
	},
	Activities: []Activity{
		{
			ID:          1,
			Title:       "Boating Adventure",
			Description: "Explore the serene lake waters with our well-maintained boats. Perfect for fishing or simply enjoying the tranquility of nature.",
			Price:       25,
			ImageURL:    "https://images.pexels.com/photos/1295036/pexels-photo-1295036.jpeg",
			Duration:    "2 hours",
			Available:   true,
		},
		{
			ID:              2,
			Title:           "Paragliding Experience",
			Description:     "Soar high above the landscape for breathtaking aerial views of the lake and surrounding forests with our experienced guides.",
			Price:           89,
			ImageURL:        "https://images.pexels.com/photos/6271625/pexels-photo-6271625.jpeg",
			Duration:        "30 minutes",
			MaxParticipants: 6,
			Available:       true,
		},
		{
			ID:          3,
			Title:       "Campfire BBQ Night",
			Description: "Enjoy an evening of good food, storytelling, and stargazing around a crackling campfire with fellow guests.",
			Price:       40,
			ImageURL:    "https://images.pexels.com/photos/5767416/pexels-photo-5767416.jpeg",
			Duration:    "3 hours",
			Available:   true,
		},
	},
}
