package response_models

type TrekSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Region       string  `json:"region"`
	Difficulty   string  `json:"difficulty"`
	DurationDays int     `json:"duration_days"`
	MaxAltitude  int     `json:"max_altitude"`
	Price        float64 `json:"price"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
	IsFeatured   bool    `json:"is_featured"`
	CoverImage   string  `json:"cover_image,omitempty"`
}

type ItineraryDay struct {
	DayNumber   int     `json:"day_number"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Altitude    int     `json:"altitude"`
	DistanceKm  float64 `json:"distance_km"`
}

type TrekDetail struct {
	TrekSummary
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Includes    []string `json:"includes"`
	Excludes    []string `json:"excludes"`
	Gallery     []string `json:"gallery"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`

	Itinerary    []ItineraryDay `json:"itinerary"`
	SimilarTreks []TrekSummary  `json:"similar_treks,omitempty"`
}
