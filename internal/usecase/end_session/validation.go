package end_session

import (
	"fmt"
	"math"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// validateRequest проверяет идентификатор сессии и объем энергии
func validateRequest(req *Request) error {
	if req.LogID <= 0 {
		return fmt.Errorf("%w: logID must be positive", ErrInvalidInput)
	}

	if math.IsNaN(req.EnergyConsumed) || math.IsInf(req.EnergyConsumed, 0) {
		return fmt.Errorf("%w: energy must be a finite number", ErrInvalidInput)
	}

	if req.EnergyConsumed < 0 {
		return fmt.Errorf("%w: energy must not be negative, got %.4f", ErrInvalidInput, req.EnergyConsumed)
	}

	if req.EnergyConsumed > domain.MaxEnergyKwh {
		return fmt.Errorf("%w: energy must not exceed %.0f kWh, got %.4f", ErrInvalidInput, domain.MaxEnergyKwh, req.EnergyConsumed)
	}

	return nil
}
