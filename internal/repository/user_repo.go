package repository

import (
	"database/sql"
	"errors"

	"thaovyxe/internal/db"
)

type UserRepository interface {
	List() ([]db.User, error)
	GetByID(id int) (*db.User, error)
	GetByUsername(username string) (*db.User, error)
	Create(u *db.User) (int, error)
	Update(id int, u *db.User, withPassword bool) (bool, error)
	// ToggleActive flips is_active unless doing so would deactivate the last
	// active admin. Returns the new state, or sql.ErrNoRows when the guard
	// refused or the row does not exist.
	ToggleActive(id int) (bool, error)
	// Delete removes the user unless doing so would remove the last active
	// admin. Inactive admins neither count toward the quorum nor are
	// protected by it. The count condition is part of the statement so two
	// concurrent deletes cannot both pass the check.
	Delete(id int) (bool, error)
	CountDependents(userID int) (bookings int, ratings int, err error)
	UpdatePassword(id int, password string) (bool, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) UserRepository {
	return &userRepository{DB: database}
}

func (r *userRepository) List() ([]db.User, error) {
	rows, err := r.DB.Query(
		`SELECT user_id, username, email, phone, role, is_active, created_at FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) GetByID(id int) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(
		`SELECT user_id, username, password, email, phone, role, is_active, created_at FROM users WHERE user_id = $1`,
		id).Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Phone, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByUsername(username string) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(
		`SELECT user_id, username, password, email, phone, role, is_active, created_at FROM users WHERE username = $1`,
		username).Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Phone, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(u *db.User) (int, error) {
	err := r.DB.QueryRow(
		`INSERT INTO users (username, password, email, phone, role) VALUES ($1, $2, $3, $4, $5) RETURNING user_id`,
		u.Username, u.Password, u.Email, u.Phone, u.Role).Scan(&u.ID)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (r *userRepository) Update(id int, u *db.User, withPassword bool) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if withPassword {
		res, err = r.DB.Exec(
			`UPDATE users SET username = $1, password = $2, email = $3, phone = $4, role = $5, updated_at = NOW() WHERE user_id = $6`,
			u.Username, u.Password, u.Email, u.Phone, u.Role, id)
	} else {
		res, err = r.DB.Exec(
			`UPDATE users SET username = $1, email = $2, phone = $3, role = $4, updated_at = NOW() WHERE user_id = $5`,
			u.Username, u.Email, u.Phone, u.Role, id)
	}
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *userRepository) ToggleActive(id int) (bool, error) {
	query := `
		UPDATE users SET is_active = NOT is_active, updated_at = NOW()
		WHERE user_id = $1
		  AND NOT (role = 'admin' AND is_active = TRUE
		           AND (SELECT COUNT(*) FROM users WHERE role = 'admin' AND is_active = TRUE) <= 1)
		RETURNING is_active`
	var active bool
	if err := r.DB.QueryRow(query, id).Scan(&active); err != nil {
		return false, err
	}
	return active, nil
}

func (r *userRepository) Delete(id int) (bool, error) {
	query := `
		DELETE FROM users
		WHERE user_id = $1
		  AND NOT (role = 'admin' AND is_active = TRUE
		           AND (SELECT COUNT(*) FROM users WHERE role = 'admin' AND is_active = TRUE) <= 1)`
	res, err := r.DB.Exec(query, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *userRepository) CountDependents(userID int) (int, int, error) {
	var bookings, ratings int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE customer_id = $1`, userID).Scan(&bookings)
	if err != nil {
		return 0, 0, err
	}
	err = r.DB.QueryRow(`SELECT COUNT(*) FROM ratings WHERE customer_id = $1`, userID).Scan(&ratings)
	if err != nil {
		return 0, 0, err
	}
	return bookings, ratings, nil
}

func (r *userRepository) UpdatePassword(id int, password string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE user_id = $2`, password, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
