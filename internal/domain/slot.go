package domain

import "github.com/m04kA/EV-ChargingService/pkg/types"

// Slot represents a free time window available for booking
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DurationMinutes returns the slot length
func (s Slot) DurationMinutes() int {
	return s.StartTime.MinutesUntil(s.EndTime)
}
