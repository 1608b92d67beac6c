package start_session

import (
	"time"

	startSession "github.com/m04kA/EV-ChargingService/internal/usecase/start_session"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	ID              int64  `json:"id"`
	BookingID       int64  `json:"bookingId"`
	UserID          int64  `json:"userId"`
	ChargingPointID int64  `json:"chargingPointId"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:              resp.LogID,
		BookingID:       resp.BookingID,
		UserID:          resp.UserID,
		ChargingPointID: resp.ChargingPointID,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		Status:          resp.Status,
	}
}
