package repository

import (
	"database/sql"

	"thaovyxe/internal/db"
)

type VehicleRepository interface {
	List() ([]db.Vehicle, error)
	ListAvailable() ([]db.Vehicle, error)
	Create(v *db.Vehicle) (int, error)
	Update(id int, v *db.Vehicle) (bool, error)
	Delete(id int) (bool, error)
	ListTypes() ([]db.VehicleType, error)
	GetTypeBySlug(slug string) (*db.VehicleType, error)
}

type vehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(database *sql.DB) VehicleRepository {
	return &vehicleRepository{DB: database}
}

func (r *vehicleRepository) List() ([]db.Vehicle, error) {
	query := `
		SELECT vehicle_id, name, type, image, description, price_per_km, price_per_day,
		       status, rating, driver_info, insurance_info, created_at, updated_at
		FROM vehicles
		ORDER BY created_at DESC`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Image, &v.Description,
			&v.PricePerKm, &v.PricePerDay, &v.Status, &v.Rating,
			&v.DriverInfo, &v.InsuranceInfo, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) ListAvailable() ([]db.Vehicle, error) {
	query := `
		SELECT vehicle_id, name, type, image, description, price_per_km, price_per_day,
		       status, rating, driver_info, insurance_info, created_at, updated_at
		FROM vehicles
		WHERE status = 'available'
		ORDER BY created_at DESC`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Image, &v.Description,
			&v.PricePerKm, &v.PricePerDay, &v.Status, &v.Rating,
			&v.DriverInfo, &v.InsuranceInfo, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Create(v *db.Vehicle) (int, error) {
	query := `
		INSERT INTO vehicles
		(name, type, image, description, price_per_km, price_per_day, status, rating, driver_info, insurance_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING vehicle_id`
	err := r.DB.QueryRow(query,
		v.Name, v.Type, v.Image, v.Description, v.PricePerKm, v.PricePerDay,
		v.Status, v.Rating, v.DriverInfo, v.InsuranceInfo,
	).Scan(&v.ID)
	if err != nil {
		return 0, err
	}
	return v.ID, nil
}

func (r *vehicleRepository) Update(id int, v *db.Vehicle) (bool, error) {
	query := `
		UPDATE vehicles SET name = $1, type = $2, image = $3, description = $4,
			price_per_km = $5, price_per_day = $6, status = $7, rating = $8,
			driver_info = $9, insurance_info = $10, updated_at = NOW()
		WHERE vehicle_id = $11`
	res, err := r.DB.Exec(query,
		v.Name, v.Type, v.Image, v.Description, v.PricePerKm, v.PricePerDay,
		v.Status, v.Rating, v.DriverInfo, v.InsuranceInfo, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *vehicleRepository) Delete(id int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM vehicles WHERE vehicle_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *vehicleRepository) ListTypes() ([]db.VehicleType, error) {
	query := `
		SELECT id, name, slug, seats, description, icon, image_url,
		       price_per_day, price_per_km, features, is_active, display_order, created_at
		FROM vehicle_types
		WHERE is_active = TRUE
		ORDER BY display_order ASC`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []db.VehicleType
	for rows.Next() {
		var vt db.VehicleType
		err := rows.Scan(&vt.ID, &vt.Name, &vt.Slug, &vt.Seats, &vt.Description,
			&vt.Icon, &vt.ImageURL, &vt.PricePerDay, &vt.PricePerKm,
			&vt.Features, &vt.IsActive, &vt.DisplayOrder, &vt.CreatedAt)
		if err != nil {
			return nil, err
		}
		types = append(types, vt)
	}
	return types, rows.Err()
}

func (r *vehicleRepository) GetTypeBySlug(slug string) (*db.VehicleType, error) {
	query := `
		SELECT id, name, slug, seats, description, icon, image_url,
		       price_per_day, price_per_km, features, is_active, display_order, created_at
		FROM vehicle_types
		WHERE slug = $1 AND is_active = TRUE`
	var vt db.VehicleType
	err := r.DB.QueryRow(query, slug).Scan(&vt.ID, &vt.Name, &vt.Slug, &vt.Seats,
		&vt.Description, &vt.Icon, &vt.ImageURL, &vt.PricePerDay, &vt.PricePerKm,
		&vt.Features, &vt.IsActive, &vt.DisplayOrder, &vt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &vt, nil
}
