package domain

import "github.com/m04kA/EV-ChargingService/pkg/types"

// FindConflict returns the first non-terminal booking whose window overlaps window,
// skipping excludeID. nil means the window is free.
func FindConflict(window types.TimeRange, bookings []*Booking, excludeID *int64) *Booking {
	for _, b := range bookings {
		if !b.IsNonTerminal() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Window().Overlaps(window) {
			return b
		}
	}
	return nil
}
