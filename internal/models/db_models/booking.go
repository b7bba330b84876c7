package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Observed booking and payment statuses. The set is not closed: admin
// tooling may introduce new states, so nothing validates against these.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusRefunded = "refunded"
)

type Booking struct {
	BaseModel
	TrekID uuid.UUID `gorm:"type:uuid;index;not null"`
	Trek   Trek      `gorm:"foreignKey:TrekID"`

	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"not null;index"`
	CustomerPhone string
	Country       string
	SpecialRequests string `gorm:"type:text"`

	DepartureDate  time.Time `gorm:"not null"`
	TravelersCount int       `gorm:"not null"`
	TotalPrice     float64   `gorm:"not null"`

	BookingStatus string `gorm:"default:'pending'"`
	PaymentStatus string `gorm:"default:'pending'"`
}
