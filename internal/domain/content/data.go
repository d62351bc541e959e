package content

// NavItem is a site navigation entry.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Testimonial is a guest review shown on the home page.
type Testimonial struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	ImageURL string `json:"image_url"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
}

// FAQ is a frequently asked question.
type FAQ struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NearbyLocation is a point of interest around the retreat.
type NearbyLocation struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DistanceKm  float64 `json:"distance_km"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

// Static site content, loaded once at process start and never mutated.

var navItems = []NavItem{
	{Label: "Home", Path: "/"},
	{Label: "Campsites", Path: "/campsites"},
	{Label: "Gallery", Path: "/gallery"},
	{Label: "About", Path: "/about"},
	{Label: "Contact", Path: "/contact"},
}

var testimonials = []Testimonial{
	{
		ID:       1,
		Name:     "Sarah Johnson",
		Location: "New York",
		ImageURL: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
		Rating:   5,
		Text:     "Our family had the most amazing time at Plumeria Retreat! The lake view from our cottage was breathtaking, and the kids loved the boating activities. Will definitely be back!",
	},
	{
		ID:       2,
		Name:     "James Wilson",
		Location: "California",
		ImageURL: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
		Rating:   4,
		Text:     "Perfect weekend getaway. The luxury tents were surprisingly comfortable and the staff was very accommodating. Highly recommend the sunset paragliding experience!",
	},
	{
		ID:       3,
		Name:     "Emily Chen",
		Location: "Washington",
		ImageURL: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
		Rating:   5,
		Text:     "The campfire BBQ night was the highlight of our trip. Great amenities, beautiful surroundings, and excellent customer service. A true nature lover's paradise.",
	},
}

var faqs = []FAQ{
	{
		ID:       1,
		Question: "What is your cancellation policy?",
		Answer:   "Bookings can be cancelled up to 7 days before arrival for a full refund. Cancellations within 7 days will receive a 50% refund. No refunds for cancellations within 48 hours of check-in.",
	},
	{
		ID:       2,
		Question: "Are pets allowed at Plumeria Retreat?",
		Answer:   "Yes, we welcome well-behaved pets in certain accommodations for an additional fee of $25 per night. Please inform us at the time of booking if you plan to bring a pet.",
	},
	{
		ID:       3,
		Question: "What is the check-in and check-out time?",
		Answer:   "Check-in is available from 3:00 PM to 8:00 PM. Check-out is before 11:00 AM. Early check-in or late check-out may be available upon request, subject to availability.",
	},
	{
		ID:       4,
		Question: "Is there Wi-Fi available?",
		Answer:   "Wi-Fi is available in the main lodge area and AC cottages. Other areas have limited connectivity by design to encourage a digital detox experience.",
	},
	{
		ID:       5,
		Question: "What activities are included in the basic stay?",
		Answer:   "Your stay includes access to hiking trails, the private beach area, fire pit usage, and board games in the common area. Additional activities like boating and paragliding are available for an extra fee.",
	},
}

var nearbyLocations = []NearbyLocation{
	{ID: 1, Name: "Tikona Fort", DistanceKm: 5, ImageURL: "https://images.pexels.com/photos/2832034/pexels-photo-2832034.jpeg", Description: "A triangular shaped fort offering panoramic views of the surrounding valleys."},
	{ID: 2, Name: "Satya Sai Temple Hadshi", DistanceKm: 12, ImageURL: "https://images.pexels.com/photos/5998495/pexels-photo-5998495.jpeg", Description: "A peaceful spiritual retreat with beautiful architecture and serene surroundings."},
	{ID: 3, Name: "Tung Fort", DistanceKm: 24, ImageURL: "https://images.pexels.com/photos/2832039/pexels-photo-2832039.jpeg", Description: "Historic fort with challenging trek and rewarding mountain views."},
	{ID: 4, Name: "Lohagad Fort", DistanceKm: 16, ImageURL: "https://images.pexels.com/photos/2832051/pexels-photo-2832051.jpeg", Description: "One of the most popular forts near Lonavala, known for its monsoon beauty."},
	{ID: 5, Name: "Visapur Fort", DistanceKm: 18, ImageURL: "https://images.pexels.com/photos/2832056/pexels-photo-2832056.jpeg", Description: "Sister fort of Lohagad offering unique historical insights."},
	{ID: 6, Name: "Bedse Caves", DistanceKm: 10, ImageURL: "https://images.pexels.com/photos/5998498/pexels-photo-5998498.jpeg", Description: "Ancient Buddhist caves with intricate carvings and peaceful atmosphere."},
	{ID: 7, Name: "Bhaje Caves", DistanceKm: 19, ImageURL: "https://images.pexels.com/photos/5998501/pexels-photo-5998501.jpeg", Description: "Rock-cut caves featuring Buddhist architecture and stunning valley views."},
	{ID: 8, Name: "Karla Caves", DistanceKm: 29, ImageURL: "https://images.pexels.com/photos/5998504/pexels-photo-5998504.jpeg", Description: "Largest and best-preserved early Buddhist cave shrines in India."},
	{ID: 9, Name: "Prati Pandharpur Dudhivare", DistanceKm: 11, ImageURL: "https://images.pexels.com/photos/5998507/pexels-photo-5998507.jpeg", Description: "Religious site known for its spiritual significance and peaceful environment."},
	{ID: 10, Name: "Tiger Point", DistanceKm: 29, ImageURL: "https://images.pexels.com/photos/5998510/pexels-photo-5998510.jpeg", Description: "Scenic viewpoint offering spectacular sunset views and valley panoramas."},
	{ID: 11, Name: "Bhushi Dam", DistanceKm: 25, ImageURL: "https://images.pexels.com/photos/5998513/pexels-photo-5998513.jpeg", Description: "Popular waterfall and dam site, perfect for monsoon visits."},
}
