package request_models

import "github.com/google/uuid"

type ItineraryDayInput struct {
	DayNumber   int     `json:"day_number" binding:"required,min=1"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Altitude    int     `json:"altitude"`
	DistanceKm  float64 `json:"distance_km"`
}

type CreateTrekRequest struct {
	Name         string   `json:"name" binding:"required"`
	Slug         string   `json:"slug"`
	Region       string   `json:"region"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"`
	DurationDays int      `json:"duration_days"`
	MaxAltitude  int      `json:"max_altitude"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Highlights   []string `json:"highlights"`
	Includes     []string `json:"includes"`
	Excludes     []string `json:"excludes"`
	Gallery      []string `json:"gallery"`

	IsPublished bool `json:"is_published"`
	IsFeatured  bool `json:"is_featured"`

	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	MetaKeywords    []string `json:"meta_keywords"`

	Itinerary []ItineraryDayInput `json:"itinerary"`
}

type UpdateTrekRequest struct {
	ID uuid.UUID `json:"-"`
	CreateTrekRequest
}

// TrekFilterParams mirrors the catalog page's query string.
type TrekFilterParams struct {
	Search     string `form:"search"`
	Difficulty string `form:"difficulty"`
	Sort       string `form:"sort"`
}
