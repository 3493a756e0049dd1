package repository

import (
	"database/sql"

	"thaovyxe/internal/db"
)

type ContactRepository interface {
	Create(c *db.Contact) (int, error)
	List() ([]db.Contact, error)
	UpdateStatus(id int, status string) (bool, error)
	Delete(id int) (bool, error)
}

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(database *sql.DB) ContactRepository {
	return &contactRepository{DB: database}
}

func (r *contactRepository) Create(c *db.Contact) (int, error) {
	err := r.DB.QueryRow(
		`INSERT INTO contacts (name, phone, email, message, status) VALUES ($1, $2, $3, $4, 'new') RETURNING contact_id, created_at`,
		c.Name, c.Phone, c.Email, c.Message).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return 0, err
	}
	c.Status = "new"
	return c.ID, nil
}

func (r *contactRepository) List() ([]db.Contact, error) {
	rows, err := r.DB.Query(
		`SELECT contact_id, name, phone, email, message, status, created_at FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []db.Contact
	for rows.Next() {
		var c db.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) UpdateStatus(id int, status string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE contacts SET status = $1 WHERE contact_id = $2`, status, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *contactRepository) Delete(id int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM contacts WHERE contact_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
