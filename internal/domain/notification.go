package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// NotificationType category of a user notification
type NotificationType string

const (
	NotificationBooking NotificationType = "booking"
	NotificationSystem  NotificationType = "system"
)

// Notification message addressed to a user
type Notification struct {
	ID        string           `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}

// BookingCreatedMessage text sent after a booking is created
func BookingCreatedMessage(date time.Time, start types.TimeString) string {
	return fmt.Sprintf("You have successfully booked a charging session for %s at %s. Please arrive on time to avoid cancellation.",
		date.Format(DateFormat), start)
}

// BookingCancelledMessage text sent after a booking is cancelled
func BookingCancelledMessage(date time.Time, start types.TimeString) string {
	return fmt.Sprintf("Your booking for %s at %s has been cancelled.", date.Format(DateFormat), start)
}

// SessionEndedMessage summary sent when a charging session ends
func SessionEndedMessage(energyKwh, cost float64) string {
	return fmt.Sprintf("Your charging session has ended. You consumed %.2f kWh at a cost of €%.2f. Thank you for using our service.",
		energyKwh, cost)
}
