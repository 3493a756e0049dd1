package repository

import (
	"database/sql"

	"thaovyxe/internal/entities"
)

type StatsRepository interface {
	Dashboard() (entities.DashboardStats, error)
}

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(database *sql.DB) StatsRepository {
	return &statsRepository{DB: database}
}

// Dashboard gathers the admin landing-page counters. One round trip per
// counter, issued sequentially.
func (r *statsRepository) Dashboard() (entities.DashboardStats, error) {
	var stats entities.DashboardStats
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM bookings`, &stats.TotalBookings},
		{`SELECT COUNT(*) FROM vehicles`, &stats.TotalVehicles},
		{`SELECT COUNT(*) FROM services`, &stats.TotalServices},
		{`SELECT COUNT(*) FROM contacts WHERE status = 'new'`, &stats.NewContacts},
		{`SELECT COUNT(*) FROM posts`, &stats.TotalPosts},
		{`SELECT COUNT(*) FROM bookings WHERE status = 'pending'`, &stats.PendingBookings},
		{`SELECT COUNT(*) FROM bookings WHERE status = 'confirmed'`, &stats.ConfirmedBookings},
	}
	for _, c := range counts {
		if err := r.DB.QueryRow(c.query).Scan(c.dest); err != nil {
			return entities.DashboardStats{}, err
		}
	}
	return stats, nil
}
