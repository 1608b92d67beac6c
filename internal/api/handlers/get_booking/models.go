package get_booking

import (
	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/internal/service/bookings/models"
)

// BookingDetailsResponse бронирование вместе с его зарядной сессией
type BookingDetailsResponse struct {
	models.BookingResponse
	Session *models.SessionResponse `json:"session,omitempty"`
}

// hasSession сессия существует только у начатых бронирований
func hasSession(status string) bool {
	switch domain.BookingStatus(status) {
	case domain.StatusActive, domain.StatusCompleted:
		return true
	default:
		return false
	}
}
