package repository

import (
	"database/sql"

	"thaovyxe/internal/db"
)

type ServiceRepository interface {
	List() ([]db.Service, error)
	ListByCreated() ([]db.Service, error)
	GetByID(id int) (*db.Service, error)
	Create(s *db.Service) (int, error)
	Update(id int, s *db.Service) (bool, error)
	Delete(id int) (bool, error)
}

type serviceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(database *sql.DB) ServiceRepository {
	return &serviceRepository{DB: database}
}

// List returns services in catalog order (by id) for the public site.
func (r *serviceRepository) List() ([]db.Service, error) {
	return r.list("ORDER BY service_id ASC")
}

// ListByCreated returns services newest-first for the admin panel.
func (r *serviceRepository) ListByCreated() ([]db.Service, error) {
	return r.list("ORDER BY created_at DESC")
}

func (r *serviceRepository) list(order string) ([]db.Service, error) {
	query := `SELECT service_id, service_name, description, price, image, created_at FROM services ` + order
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []db.Service
	for rows.Next() {
		var s db.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Image, &s.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *serviceRepository) GetByID(id int) (*db.Service, error) {
	var s db.Service
	err := r.DB.QueryRow(
		`SELECT service_id, service_name, description, price, image, created_at FROM services WHERE service_id = $1`,
		id).Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Image, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) Create(s *db.Service) (int, error) {
	err := r.DB.QueryRow(
		`INSERT INTO services (service_name, description, price, image) VALUES ($1, $2, $3, $4) RETURNING service_id`,
		s.Name, s.Description, s.Price, s.Image).Scan(&s.ID)
	if err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *serviceRepository) Update(id int, s *db.Service) (bool, error) {
	res, err := r.DB.Exec(
		`UPDATE services SET service_name = $1, description = $2, price = $3, image = $4, updated_at = NOW() WHERE service_id = $5`,
		s.Name, s.Description, s.Price, s.Image, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *serviceRepository) Delete(id int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM services WHERE service_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
