package get_available_slots

import (
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// Request модель запроса на получение свободных окон
type Request struct {
	ChargingPointID int64     // ID зарядной точки
	Date            time.Time // Дата (без времени)
	DurationMinutes int       // Длительность окна, 0 - значение по умолчанию
	IntervalMinutes int       // Шаг перебора, 0 - значение из настроек
}

// Response модель ответа со списком свободных окон
type Response struct {
	ChargingPointID int64
	Date            time.Time
	DurationMinutes int
	IntervalMinutes int
	Slots           []domain.Slot
}
