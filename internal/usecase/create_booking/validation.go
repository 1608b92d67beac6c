package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает окно бронирования
func validateRequest(req *Request) (types.TimeRange, error) {
	if req.UserID <= 0 {
		return types.TimeRange{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ChargingPointID <= 0 {
		return types.TimeRange{}, fmt.Errorf("%w: chargingPointID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return types.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return types.TimeRange{}, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	// Конец окна строго позже начала
	window, err := types.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return types.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return window, nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateBookingTime проверяет, что на сегодня окно еще не началось
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	// Если дата бронирования не сегодня, проверка не нужна
	if !isSameDay(bookingDate, now) {
		return nil
	}

	if startTime.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: %s is earlier than current time %s", ErrTooLateToBook, startTime, types.NewTimeString(now))
	}

	return nil
}

// validateOperatingHours проверяет, что окно целиком внутри часов работы
func validateOperatingHours(window types.TimeRange, settings domain.BookingSettings) error {
	if !settings.OperatingHours.Contains(window) {
		return fmt.Errorf("%w: %s is not within %s", ErrOutsideOperatingHours, window, settings.OperatingHours)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
