package domain

import (
	"time"

	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// allowedTransitions booking state machine
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusScheduled: {StatusActive, StatusCancelled, StatusNoShow},
	StatusActive:    {StatusCompleted},
}

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusActive, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s BookingStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether the state machine allows s -> next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a reservation of a charging point for a time window on a date
type Booking struct {
	ID              int64
	UserID          int64
	ChargingPointID int64
	BookingDate     time.Time // date only, time part is zero
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the booked [start, end) interval
func (b *Booking) Window() types.TimeRange {
	return types.TimeRange{Start: b.StartTime, End: b.EndTime}
}

// IsNonTerminal returns true if the booking still holds its window
func (b *Booking) IsNonTerminal() bool {
	return !b.Status.IsTerminal()
}

// StartsAt returns the absolute start instant in the location of BookingDate
func (b *Booking) StartsAt() time.Time {
	return b.StartTime.On(b.BookingDate)
}

// BookingsFilter filter for the admin bookings listing
type BookingsFilter struct {
	ChargingPointID *int64         // nil - all points
	UserID          *int64         // nil - all users
	Date            *time.Time     // nil - any date
	Status          *BookingStatus // nil - any status
	Limit           uint64         // 0 - no limit
}

// OverlapQuery parameters for looking up bookings that hold a window on a point
type OverlapQuery struct {
	ChargingPointID  int64
	Date             time.Time
	Window           *types.TimeRange // nil - every non-terminal booking on the date
	ExcludeBookingID *int64
}
