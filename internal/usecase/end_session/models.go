package end_session

import "time"

// Request модель запроса на завершение зарядной сессии
type Request struct {
	LogID          int64   // ID записи о сессии
	UserID         int64   // ID пользователя, завершающего сессию
	IsAdmin        bool    // Администратор может завершать сессии любых пользователей
	EnergyConsumed float64 // Потребленная энергия, кВт·ч
}

// Response модель ответа с итогами сессии
type Response struct {
	LogID           int64
	BookingID       int64
	UserID          int64
	ChargingPointID int64
	StartTime       time.Time
	EndTime         time.Time
	EnergyConsumed  float64
	Cost            float64
	Status          string
}
