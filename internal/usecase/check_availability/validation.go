package check_availability

import (
	"fmt"

	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает окно
func validateRequest(req *Request) (types.TimeRange, error) {
	if req.ChargingPointID <= 0 {
		return types.TimeRange{}, fmt.Errorf("%w: chargingPointID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return types.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	window, err := types.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return types.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return window, nil
}
