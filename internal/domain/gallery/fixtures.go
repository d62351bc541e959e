package gallery

// Seed images for the public gallery, matching the marketing site.
var Fixtures = []fixtureImage{
	{Category: CategoryNature, Alt: "Lakeside sunset view", URL: "https://images.pexels.com/photos/1761279/pexels-photo-1761279.jpeg"},
	{Category: CategoryNature, Alt: "Misty morning over the lake", URL: "https://images.pexels.com/photos/1770809/pexels-photo-1770809.jpeg"},
	{Category: CategoryNature, Alt: "Forest trail near the retreat", URL: "https://images.pexels.com/photos/1578750/pexels-photo-1578750.jpeg"},
	{Category: CategoryNature, Alt: "Campfire by the water", URL: "https://images.pexels.com/photos/776117/pexels-photo-776117.jpeg"},
	{Category: CategoryAccommodation, Alt: "Lake view cottage exterior", URL: "https://images.pexels.com/photos/2351649/pexels-photo-2351649.jpeg"},
	{Category: CategoryAccommodation, Alt: "Luxury tent interior", URL: "https://images.pexels.com/photos/2422265/pexels-photo-2422265.jpeg"},
	{Category: CategoryAccommodation, Alt: "Cozy cottage bedroom", URL: "https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg"},
	{Category: CategoryAccommodation, Alt: "Dormitory common area", URL: "https://images.pexels.com/photos/2291636/pexels-photo-2291636.jpeg"},
}

type fixtureImage struct {
	Category Category
	Alt      string
	URL      string
}
