package entities

import "time"

// SessionAlertData feeds the "new session detected" email sent when a login
// happens while other sessions for the same account are still active.
type SessionAlertData struct {
	Username          string
	NewSessionID      string
	IPAddress         string
	UserAgent         string
	LoginTime         time.Time
	PriorSessionID    string
	PriorSessionIP    string
	PriorSessionStart time.Time
	ActiveSessions    int
}

// BookingEmailData feeds the status-change notification sent to the customer
// when an admin confirms or cancels a booking.
type BookingEmailData struct {
	CustomerName    string
	BookingID       int
	PickupLocation  string
	PickupFormatted string
	VehicleName     string
	StatusText      string
}
