package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Trek difficulty grades as shown on the public catalog.
const (
	DifficultyEasy        = "Easy"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
	DifficultyStrenuous   = "Strenuous"
)

func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging, DifficultyStrenuous:
		return true
	}
	return false
}

type Trek struct {
	BaseModel
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Region      string `gorm:"index"`
	Description string `gorm:"type:text"`
	Difficulty  string `gorm:"index"`
	DurationDays int
	MaxAltitude  int
	Price        float64
	Rating       float64
	ReviewCount  int

	Highlights pq.StringArray `gorm:"type:text[]"`
	Includes   pq.StringArray `gorm:"type:text[]"`
	Excludes   pq.StringArray `gorm:"type:text[]"`
	Gallery    pq.StringArray `gorm:"type:text[]"`

	IsPublished bool `gorm:"index"`
	IsFeatured  bool

	MetaTitle       string
	MetaDescription string
	MetaKeywords    pq.StringArray `gorm:"type:text[]"`

	Itinerary []TrekItinerary `gorm:"foreignKey:TrekID"`
	Bookings  []Booking       `gorm:"foreignKey:TrekID"`
}

type TrekItinerary struct {
	BaseModel
	TrekID      uuid.UUID `gorm:"type:uuid;index;not null"`
	DayNumber   int       `gorm:"not null"`
	Title       string
	Description string `gorm:"type:text"`
	Altitude    int
	DistanceKm  float64
}
