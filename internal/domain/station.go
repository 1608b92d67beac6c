package domain

import "time"

// PointStatus is the cached occupancy state of a charging point
type PointStatus string

const (
	PointAvailable   PointStatus = "available"
	PointReserved    PointStatus = "reserved"
	PointInUse       PointStatus = "in_use"
	PointMaintenance PointStatus = "maintenance"
)

// IsValid returns true for known point statuses
func (s PointStatus) IsValid() bool {
	switch s {
	case PointAvailable, PointReserved, PointInUse, PointMaintenance:
		return true
	}
	return false
}

// Station is a charging site
type Station struct {
	ID            int64
	Name          string
	AddressStreet string
	AddressCivic  string
	AddressCity   string
	Municipality  string
	ZipCode       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Column is a physical charger at a station
type Column struct {
	ID            int64
	StationID     int64
	ColumnNumber  int
	PowerKW       float64
	ConnectorType string
	CreatedAt     time.Time
}

// ChargingPoint is a bookable connector of a column
type ChargingPoint struct {
	ID          int64
	ColumnID    int64
	StationID   int64 // resolved through the column
	PointNumber int
	Status      PointStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PointDetails charging point joined with its column data
type PointDetails struct {
	ChargingPoint
	ColumnNumber  int
	PowerKW       float64
	ConnectorType string
}

// StationSummary station with point counters
type StationSummary struct {
	Station
	TotalPoints     int
	AvailablePoints int
}

// AvailabilityPercentage share of available points rounded to an integer
func (s *StationSummary) AvailabilityPercentage() int {
	if s.TotalPoints == 0 {
		return 0
	}
	return int(float64(s.AvailablePoints)/float64(s.TotalPoints)*100 + 0.5)
}

// StationStatus station with every point and its column
type StationStatus struct {
	Station
	Points []PointDetails
}
