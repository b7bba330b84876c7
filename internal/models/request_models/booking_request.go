package request_models

import "github.com/google/uuid"

type CreateBookingRequest struct {
	TrekID          uuid.UUID `json:"trek_id" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerEmail   string    `json:"customer_email" binding:"required,email"`
	CustomerPhone   string    `json:"customer_phone"`
	Country         string    `json:"country"`
	SpecialRequests string    `json:"special_requests"`
	DepartureDate   string    `json:"departure_date" binding:"required"`
	TravelersCount  int       `json:"travelers_count" binding:"required,min=1"`
}

type UpdateBookingStatusRequest struct {
	ID            uuid.UUID `json:"-"`
	BookingStatus string    `json:"booking_status"`
	PaymentStatus string    `json:"payment_status"`
}
