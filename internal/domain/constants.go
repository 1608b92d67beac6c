package domain

import "github.com/m04kA/EV-ChargingService/pkg/types"

// Default booking settings
const (
	DefaultPricePerKwh            = 0.35
	DefaultGraceMinutes           = 10
	DefaultSlotIntervalMinutes    = 30
	DefaultBookingDurationMinutes = 60

	DefaultOperatingStart types.TimeString = "06:00"
	DefaultOperatingEnd   types.TimeString = "22:00"
)

// Business validation constants
const (
	MaxBookingDurationMinutes = 24 * 60
	MaxEnergyKwh              = 1000.0
	CostPrecision             = 4 // decimal places kept in cost
	MaxNotificationsLimit     = 100
	DefaultNotificationsLimit = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NonTerminalStatuses bookings in these statuses hold their window on the point
var NonTerminalStatuses = []BookingStatus{
	StatusScheduled,
	StatusActive,
}

// AllStatuses every booking status
var AllStatuses = []BookingStatus{
	StatusScheduled,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
