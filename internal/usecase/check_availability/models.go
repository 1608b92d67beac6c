package check_availability

import (
	"time"

	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// Request модель запроса на проверку окна
type Request struct {
	ChargingPointID  int64            // ID зарядной точки
	Date             time.Time        // Дата (без времени)
	StartTime        types.TimeString // Начало окна
	EndTime          types.TimeString // Конец окна (не включительно)
	ExcludeBookingID *int64           // Бронирование, которое не учитывается (при повторной проверке)
}

// Response результат проверки
type Response struct {
	Available         bool
	ConflictBookingID *int64 // ID бронирования, занимающего окно
}
