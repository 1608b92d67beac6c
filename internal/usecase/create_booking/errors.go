package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
)

var (
	// ErrPointNotFound возвращается, когда зарядная точка не найдена
	ErrPointNotFound = fmt.Errorf("create_booking: charging point not found: %w", domain.ErrNotFound)

	// ErrPointUnderMaintenance возвращается, когда точка выведена на обслуживание
	ErrPointUnderMaintenance = fmt.Errorf("create_booking: charging point is under maintenance: %w", domain.ErrInvalidState)

	// ErrSlotUnavailable возвращается, когда окно пересекается с другим бронированием
	ErrSlotUnavailable = fmt.Errorf("create_booking: slot is not available: %w", domain.ErrSlotUnavailable)

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = fmt.Errorf("create_booking: invalid booking date: %w", domain.ErrInvalidInput)

	// ErrTooLateToBook возвращается, когда начало окна сегодня уже прошло
	ErrTooLateToBook = fmt.Errorf("create_booking: start time has already passed: %w", domain.ErrInvalidInput)

	// ErrOutsideOperatingHours возвращается, когда окно выходит за часы работы
	ErrOutsideOperatingHours = fmt.Errorf("create_booking: window is outside operating hours: %w", domain.ErrInvalidInput)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrInvalidInput)

	// ErrStorage возвращается при таймауте или ошибке соединения с БД
	ErrStorage = fmt.Errorf("create_booking: storage failure: %w", domain.ErrStorageFailure)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// storageError различает повторяемые ошибки хранилища и прочие
func storageError(action string, err error) error {
	if dberrors.IsTransient(err) {
		return fmt.Errorf("%w: %s: %v", ErrStorage, action, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, action, err)
}
