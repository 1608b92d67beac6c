package start_session

import "time"

// Request модель запроса на начало зарядной сессии
type Request struct {
	BookingID int64 // ID бронирования
	UserID    int64 // ID пользователя, запустившего сессию
	IsAdmin   bool  // Администратор может запускать сессии любых пользователей
}

// Response модель ответа с начатой сессией
type Response struct {
	LogID           int64
	BookingID       int64
	UserID          int64
	ChargingPointID int64
	StartTime       time.Time
	Status          string
}
