package get_available_slots

import (
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ChargingPointID <= 0 {
		return fmt.Errorf("%w: chargingPointID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxBookingDurationMinutes)
	}

	if req.IntervalMinutes < 0 || req.IntervalMinutes > domain.MaxBookingDurationMinutes {
		return fmt.Errorf("%w: interval must be between 1 and %d minutes", ErrInvalidInput, domain.MaxBookingDurationMinutes)
	}

	return nil
}
