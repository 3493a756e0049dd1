package repository

import (
	"database/sql"

	"thaovyxe/internal/db"
)

type SessionRepository interface {
	Create(s *db.Session) error
	ListActiveByUser(userID int) ([]db.Session, error)
}

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(database *sql.DB) SessionRepository {
	return &sessionRepository{DB: database}
}

func (r *sessionRepository) Create(s *db.Session) error {
	query := `
		INSERT INTO admin_sessions (session_id, user_id, ip_address, user_agent, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING created_at, last_activity`
	return r.DB.QueryRow(query, s.ID, s.UserID, s.IPAddress, s.UserAgent).
		Scan(&s.CreatedAt, &s.LastActivity)
}

// ListActiveByUser returns active sessions newest-first, so the first element
// is the most recent prior login.
func (r *sessionRepository) ListActiveByUser(userID int) ([]db.Session, error) {
	query := `
		SELECT session_id, user_id, ip_address, user_agent, created_at, last_activity, is_active
		FROM admin_sessions
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []db.Session
	for rows.Next() {
		var s db.Session
		err := rows.Scan(&s.ID, &s.UserID, &s.IPAddress, &s.UserAgent,
			&s.CreatedAt, &s.LastActivity, &s.IsActive)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
