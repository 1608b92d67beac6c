package expire_bookings

import "time"

// Request модель запроса на истечение бронирований
type Request struct {
	Now          time.Time // Момент проверки, нулевое значение - текущее время
	GraceMinutes *int      // Допустимое опоздание, nil - значение из настроек
}

// Response модель ответа
type Response struct {
	Cutoff     time.Time // Бронирования с началом раньше этого момента истекли
	ExpiredIDs []int64   // ID бронирований, переведенных в no_show этим вызовом
}
