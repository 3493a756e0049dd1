package service

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/repository"
)

const (
	statusPending   = "pending"
	statusConfirmed = "confirmed"
	statusCompleted = "completed"
	statusCancelled = "cancelled"
)

// The intended lifecycle is pending -> confirmed -> completed, with
// cancellation allowed from pending and confirmed. The status update itself
// stays permissive: any value in the enumeration is accepted from any prior
// state.
func isValidStatus(status string) bool {
	switch status {
	case statusPending, statusConfirmed, statusCompleted, statusCancelled:
		return true
	}
	return false
}

type BookingService struct {
	Repo   repository.BookingRepository
	Sender Sender
}

func NewBookingService(repo repository.BookingRepository, sender Sender) *BookingService {
	return &BookingService{Repo: repo, Sender: sender}
}

// Create validates the public booking form and inserts the row with status
// forced to pending regardless of caller input.
func (s *BookingService) Create(req *entities.BookingRequest) (int, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.PickupLocation == "" ||
		req.PickupDate == "" || req.PickupTime == "" {
		return 0, apperrors.ErrValidation(
			"Missing required fields: customer_name, customer_phone, pickup_location, pickup_date, pickup_time")
	}

	pickupDate, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		return 0, apperrors.ErrValidation("pickup_date must be in YYYY-MM-DD format")
	}

	var returnDate *time.Time
	if req.ReturnDate != nil && *req.ReturnDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.ReturnDate)
		if err != nil {
			return 0, apperrors.ErrValidation("return_date must be in YYYY-MM-DD format")
		}
		returnDate = &parsed
	}

	booking := &db.Booking{
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		CustomerEmail:      req.CustomerEmail,
		VehicleID:          req.VehicleID,
		ServiceID:          req.ServiceID,
		PickupLocation:     req.PickupLocation,
		DropoffLocation:    req.DropoffLocation,
		PickupDate:         pickupDate,
		PickupTime:         req.PickupTime,
		ReturnDate:         returnDate,
		NumberOfPassengers: req.NumberOfPassengers,
		ServiceType:        req.ServiceType,
		Notes:              req.Notes,
		Status:             statusPending,
	}

	id, err := s.Repo.Create(booking)
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		return 0, apperrors.ErrStorage("Lỗi khi tạo đặt lịch. Vui lòng thử lại.")
	}
	return id, nil
}

func (s *BookingService) List() ([]db.Booking, error) {
	bookings, err := s.Repo.List()
	if err != nil {
		log.Printf("Error fetching bookings: %v", err)
		return nil, apperrors.ErrStorage("Error fetching bookings")
	}
	return bookings, nil
}

func (s *BookingService) GetByID(id int) (*db.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound("Booking not found")
		}
		log.Printf("Error fetching booking %d: %v", id, err)
		return nil, apperrors.ErrStorage("Error fetching booking")
	}
	return booking, nil
}

// UpdateStatus applies a new status after enum validation. Confirmation and
// cancellation notify the customer out of band.
func (s *BookingService) UpdateStatus(id int, status string) error {
	if !isValidStatus(status) {
		return apperrors.ErrValidation("Invalid status. Must be: pending, confirmed, completed, or cancelled")
	}

	updated, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		log.Printf("Error updating booking %d status: %v", id, err)
		return apperrors.ErrStorage("Error updating booking status")
	}
	if !updated {
		return apperrors.ErrNotFound("Booking not found")
	}

	if status == statusConfirmed || status == statusCancelled {
		if booking, err := s.Repo.GetByID(id); err == nil {
			s.Sender.SendBookingStatusNotification(booking, status)
		} else {
			log.Printf("Booking %d updated but notification lookup failed: %v", id, err)
		}
	}
	return nil
}

func (s *BookingService) Delete(id int) error {
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		log.Printf("Error deleting booking %d: %v", id, err)
		return apperrors.ErrStorage("Error deleting booking")
	}
	if !deleted {
		return apperrors.ErrNotFound("Booking not found")
	}
	return nil
}
