package check_availability

import (
	"net/url"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/EV-ChargingService/internal/usecase/check_availability"
	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available         bool   `json:"available"`
	ConflictBookingID *int64 `json:"conflictBookingId,omitempty"`
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Формат времени проверяет use case.
func ToUseCaseRequest(pointID int64, query url.Values) (*checkAvailability.Request, error) {
	date, err := handlers.ParseDate(query.Get("date"))
	if err != nil {
		return nil, err
	}

	req := &checkAvailability.Request{
		ChargingPointID: pointID,
		Date:            date,
		StartTime:       types.TimeString(query.Get("start")),
		EndTime:         types.TimeString(query.Get("end")),
	}

	if s := query.Get("excludeBookingId"); s != "" {
		id, err := handlers.ParseID(s)
		if err != nil {
			return nil, err
		}
		req.ExcludeBookingID = &id
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:         resp.Available,
		ConflictBookingID: resp.ConflictBookingID,
	}
}
