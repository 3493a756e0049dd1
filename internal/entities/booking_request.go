package entities

// BookingRequest is the public booking form payload. Any status supplied by
// the caller is ignored; new bookings always start as pending.
type BookingRequest struct {
	CustomerName       string  `json:"customer_name"`
	CustomerPhone      string  `json:"customer_phone"`
	CustomerEmail      *string `json:"customer_email"`
	VehicleID          *int    `json:"vehicle_id"`
	ServiceID          *int    `json:"service_id"`
	PickupLocation     string  `json:"pickup_location"`
	DropoffLocation    *string `json:"dropoff_location"`
	PickupDate         string  `json:"pickup_date"`
	PickupTime         string  `json:"pickup_time"`
	ReturnDate         *string `json:"return_date"`
	NumberOfPassengers *int    `json:"number_of_passengers"`
	ServiceType        *string `json:"service_type"`
	Notes              *string `json:"notes"`
}

type BookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingFilter narrows the reporting and export queries. Dates are
// inclusive YYYY-MM-DD bounds on created_at; empty fields are no-ops.
type BookingFilter struct {
	StartDate string
	EndDate   string
	Status    string
}
