package repository

import (
	"database/sql"
	"strconv"

	"thaovyxe/internal/db"
	"thaovyxe/internal/entities"
)

const bookingSelect = `
	SELECT
		b.booking_id, b.customer_name, b.customer_phone, b.customer_email,
		b.vehicle_id, b.service_id, b.pickup_location, b.dropoff_location,
		b.pickup_date, b.pickup_time, b.return_date, b.number_of_passengers,
		b.service_type, b.notes, b.status, b.created_at, b.updated_at,
		v.name AS vehicle_name, v.type AS vehicle_type
	FROM bookings b
	LEFT JOIN vehicles v ON v.vehicle_id = b.vehicle_id`

type BookingRepository interface {
	Create(b *db.Booking) (int, error)
	List() ([]db.Booking, error)
	GetByID(id int) (*db.Booking, error)
	UpdateStatus(id int, status string) (bool, error)
	Delete(id int) (bool, error)
	Stats(filter entities.BookingFilter, periodExpr string) ([]entities.StatBucket, error)
	Summary(filter entities.BookingFilter) (entities.StatSummary, error)
	ListForExport(filter entities.BookingFilter) ([]db.Booking, error)
}

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) BookingRepository {
	return &bookingRepository{DB: database}
}

func (r *bookingRepository) Create(b *db.Booking) (int, error) {
	query := `
		INSERT INTO bookings
		(customer_name, customer_phone, customer_email, vehicle_id, service_id,
		 pickup_location, dropoff_location, pickup_date, pickup_time, return_date,
		 number_of_passengers, service_type, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING booking_id, created_at, updated_at`
	err := r.DB.QueryRow(query,
		b.CustomerName,
		b.CustomerPhone,
		b.CustomerEmail,
		b.VehicleID,
		b.ServiceID,
		b.PickupLocation,
		b.DropoffLocation,
		b.PickupDate,
		b.PickupTime,
		b.ReturnDate,
		b.NumberOfPassengers,
		b.ServiceType,
		b.Notes,
		b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return b.ID, nil
}

func scanBooking(scanner interface{ Scan(...interface{}) error }, b *db.Booking) error {
	return scanner.Scan(
		&b.ID, &b.CustomerName, &b.CustomerPhone, &b.CustomerEmail,
		&b.VehicleID, &b.ServiceID, &b.PickupLocation, &b.DropoffLocation,
		&b.PickupDate, &b.PickupTime, &b.ReturnDate, &b.NumberOfPassengers,
		&b.ServiceType, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		&b.VehicleName, &b.VehicleType,
	)
}

func (r *bookingRepository) List() ([]db.Booking, error) {
	rows, err := r.DB.Query(bookingSelect + " ORDER BY b.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) GetByID(id int) (*db.Booking, error) {
	var b db.Booking
	err := scanBooking(r.DB.QueryRow(bookingSelect+" WHERE b.booking_id = $1", id), &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) UpdateStatus(id int, status string) (bool, error) {
	res, err := r.DB.Exec(
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE booking_id = $2`,
		status, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *bookingRepository) Delete(id int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM bookings WHERE booking_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// appendDateFilter adds inclusive created_at date bounds to a query that
// already ends in "WHERE 1=1".
func appendDateFilter(query string, args []interface{}, filter entities.BookingFilter) (string, []interface{}) {
	idx := len(args) + 1
	if filter.StartDate != "" {
		query += " AND created_at::date >= $" + strconv.Itoa(idx)
		args = append(args, filter.StartDate)
		idx++
	}
	if filter.EndDate != "" {
		query += " AND created_at::date <= $" + strconv.Itoa(idx)
		args = append(args, filter.EndDate)
		idx++
	}
	return query, args
}

// Stats groups bookings by periodExpr, a to_char expression over created_at
// chosen by the service layer (day, month or year granularity).
func (r *bookingRepository) Stats(filter entities.BookingFilter, periodExpr string) ([]entities.StatBucket, error) {
	query := `
		SELECT ` + periodExpr + ` AS period,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled
		FROM bookings
		WHERE 1=1`
	args := []interface{}{}
	query, args = appendDateFilter(query, args, filter)
	query += " GROUP BY " + periodExpr + " ORDER BY period DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []entities.StatBucket
	for rows.Next() {
		var b entities.StatBucket
		if err := rows.Scan(&b.Period, &b.Total, &b.Pending, &b.Confirmed, &b.Completed, &b.Cancelled); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (r *bookingRepository) Summary(filter entities.BookingFilter) (entities.StatSummary, error) {
	query := `
		SELECT COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled
		FROM bookings
		WHERE 1=1`
	args := []interface{}{}
	query, args = appendDateFilter(query, args, filter)

	var s entities.StatSummary
	err := r.DB.QueryRow(query, args...).Scan(&s.Total, &s.Pending, &s.Confirmed, &s.Completed, &s.Cancelled)
	return s, err
}

func (r *bookingRepository) ListForExport(filter entities.BookingFilter) ([]db.Booking, error) {
	query := bookingSelect + " WHERE 1=1"
	args := []interface{}{}
	idx := 1

	if filter.StartDate != "" {
		query += " AND b.created_at::date >= $" + strconv.Itoa(idx)
		args = append(args, filter.StartDate)
		idx++
	}
	if filter.EndDate != "" {
		query += " AND b.created_at::date <= $" + strconv.Itoa(idx)
		args = append(args, filter.EndDate)
		idx++
	}
	if filter.Status != "" {
		query += " AND b.status = $" + strconv.Itoa(idx)
		args = append(args, filter.Status)
		idx++
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
