package response_models

type BookingResponse struct {
	ID             string  `json:"id"`
	TrekID         string  `json:"trek_id"`
	TrekName       string  `json:"trek_name,omitempty"`
	CustomerName   string  `json:"customer_name"`
	CustomerEmail  string  `json:"customer_email"`
	CustomerPhone  string  `json:"customer_phone,omitempty"`
	Country        string  `json:"country,omitempty"`
	DepartureDate  string  `json:"departure_date"`
	TravelersCount int     `json:"travelers_count"`
	TotalPrice     float64 `json:"total_price"`
	BookingStatus  string  `json:"booking_status"`
	PaymentStatus  string  `json:"payment_status"`
	CreatedAt      int64   `json:"created_at"`
}
