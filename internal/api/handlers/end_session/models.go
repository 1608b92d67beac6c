package end_session

import (
	"time"

	endSession "github.com/m04kA/EV-ChargingService/internal/usecase/end_session"
)

// EndSessionRequest HTTP request model
type EndSessionRequest struct {
	EnergyConsumed *float64 `json:"energyConsumed"` // кВт·ч, обязательно
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID              int64   `json:"id"`
	BookingID       int64   `json:"bookingId"`
	UserID          int64   `json:"userId"`
	ChargingPointID int64   `json:"chargingPointId"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	EnergyConsumed  float64 `json:"energyConsumed"`
	Cost            float64 `json:"cost"`
	Status          string  `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *endSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:              resp.LogID,
		BookingID:       resp.BookingID,
		UserID:          resp.UserID,
		ChargingPointID: resp.ChargingPointID,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		DurationMinutes: int(resp.EndTime.Sub(resp.StartTime).Minutes()),
		EnergyConsumed:  resp.EnergyConsumed,
		Cost:            resp.Cost,
		Status:          resp.Status,
	}
}
