package entities

// StatBucket is one grouped reporting row. Period is formatted per the
// requested granularity: "2006-01-02", "2006-01" or "2006".
type StatBucket struct {
	Period    string `json:"period"`
	Total     int    `json:"total"`
	Pending   int    `json:"pending"`
	Confirmed int    `json:"confirmed"`
	Completed int    `json:"completed"`
	Cancelled int    `json:"cancelled"`
}

// StatSummary is the grand total over the same filtered set.
type StatSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type BookingStats struct {
	Statistics []StatBucket `json:"statistics"`
	Summary    StatSummary  `json:"summary"`
}

type DashboardStats struct {
	TotalBookings     int `json:"totalBookings"`
	TotalVehicles     int `json:"totalVehicles"`
	TotalServices     int `json:"totalServices"`
	NewContacts       int `json:"newContacts"`
	TotalPosts        int `json:"totalPosts"`
	PendingBookings   int `json:"pendingBookings"`
	ConfirmedBookings int `json:"confirmedBookings"`
}
