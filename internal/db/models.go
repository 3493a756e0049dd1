package db

import (
	"encoding/json"
	"time"
)

type Service struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       *float64   `json:"price"`
	Image       *string    `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type VehicleType struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Seats        int             `json:"seats"`
	Description  *string         `json:"description"`
	Icon         *string         `json:"icon"`
	ImageURL     *string         `json:"image_url"`
	PricePerDay  *float64        `json:"price_per_day"`
	PricePerKm   *float64        `json:"price_per_km"`
	Features     json.RawMessage `json:"features"`
	IsActive     bool            `json:"is_active"`
	DisplayOrder int             `json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Vehicle struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Image         *string   `json:"image_url"`
	Description   *string   `json:"description"`
	PricePerKm    *float64  `json:"price_per_km"`
	PricePerDay   *float64  `json:"price_per_day"`
	Status        string    `json:"status"`
	Rating        *float64  `json:"rating"`
	DriverInfo    *string   `json:"driver_info"`
	InsuranceInfo *string   `json:"insurance_info"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Booking struct {
	ID                 int        `json:"booking_id"`
	CustomerName       string     `json:"customer_name"`
	CustomerPhone      string     `json:"customer_phone"`
	CustomerEmail      *string    `json:"customer_email"`
	VehicleID          *int       `json:"vehicle_id"`
	ServiceID          *int       `json:"service_id"`
	PickupLocation     string     `json:"pickup_location"`
	DropoffLocation    *string    `json:"dropoff_location"`
	PickupDate         time.Time  `json:"pickup_date"`
	PickupTime         string     `json:"pickup_time"`
	ReturnDate         *time.Time `json:"return_date"`
	NumberOfPassengers *int       `json:"number_of_passengers"`
	ServiceType        *string    `json:"service_type"`
	Notes              *string    `json:"notes"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Joined vehicle display fields, nil when no vehicle is assigned.
	VehicleName *string `json:"vehicle_name"`
	VehicleType *string `json:"vehicle_type"`
}

type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image_url"`
	Category  *string   `json:"category"`
	CreatedBy *int      `json:"created_by,omitempty"`
	Author    *string   `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Contact struct {
	ID        int       `json:"contact_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// User rows carry the bcrypt hash in Password; it is never serialized.
type User struct {
	ID        int       `json:"user_id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	ID           string    `json:"session_id"`
	UserID       int       `json:"user_id"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	IsActive     bool      `json:"is_active"`
}
