package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// BookingSettings operational parameters of the booking engine.
// Built from the [booking] config section and passed to constructors explicitly.
type BookingSettings struct {
	PricePerKwh            float64
	GraceMinutes           int // unstarted bookings expire this long after start
	SlotIntervalMinutes    int // stride of slot enumeration
	DefaultDurationMinutes int
	OperatingHours         types.TimeRange
	Location               *time.Location
}

// DefaultBookingSettings returns the values the service ships with
func DefaultBookingSettings() BookingSettings {
	return BookingSettings{
		PricePerKwh:            DefaultPricePerKwh,
		GraceMinutes:           DefaultGraceMinutes,
		SlotIntervalMinutes:    DefaultSlotIntervalMinutes,
		DefaultDurationMinutes: DefaultBookingDurationMinutes,
		OperatingHours: types.TimeRange{
			Start: DefaultOperatingStart,
			End:   DefaultOperatingEnd,
		},
		Location: time.UTC,
	}
}

// Validate checks settings consistency
func (s BookingSettings) Validate() error {
	if s.PricePerKwh < 0 {
		return fmt.Errorf("price_per_kwh must be non-negative, got %v", s.PricePerKwh)
	}
	if s.GraceMinutes < 0 {
		return fmt.Errorf("grace_minutes must be non-negative, got %d", s.GraceMinutes)
	}
	if s.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("slot_interval_minutes must be positive, got %d", s.SlotIntervalMinutes)
	}
	if s.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("default_duration_minutes must be positive, got %d", s.DefaultDurationMinutes)
	}
	if err := s.OperatingHours.Validate(); err != nil {
		return fmt.Errorf("operating hours: %w", err)
	}
	if s.Location == nil {
		return fmt.Errorf("timezone is not set")
	}
	return nil
}

// In returns t converted to the configured location
func (s BookingSettings) In(t time.Time) time.Time {
	if s.Location == nil {
		return t
	}
	return t.In(s.Location)
}
