package create_booking

import (
	"time"

	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID пользователя
	ChargingPointID int64            // ID зарядной точки
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "09:00")
	EndTime         types.TimeString // Время окончания, не включительно
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	UserID          int64
	ChargingPointID int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          string

	CreatedAt time.Time
	UpdatedAt time.Time
}
