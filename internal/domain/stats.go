package domain

// StatsBucket aggregate over completed charging logs
type StatsBucket struct {
	Sessions  int
	EnergyKwh float64
	Cost      float64
}

// UserStats lifetime, current year and current month buckets
type UserStats struct {
	UserID  int64
	Year    int
	Month   int
	Total   StatsBucket
	Yearly  StatsBucket
	Monthly StatsBucket
}
