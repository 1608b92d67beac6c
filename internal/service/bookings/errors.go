package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking not found: %w", domain.ErrNotFound)

	// ErrSessionNotFound возвращается, когда у бронирования нет зарядной сессии
	ErrSessionNotFound = fmt.Errorf("charging session not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = fmt.Errorf("booking cannot be cancelled: %w", domain.ErrInvalidState)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrInvalidInput)

	// ErrStorage возвращается при таймауте или ошибке соединения с БД
	ErrStorage = fmt.Errorf("service: storage failure: %w", domain.ErrStorageFailure)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// storageError различает повторяемые ошибки хранилища и прочие
func storageError(action string, err error) error {
	if dberrors.IsTransient(err) {
		return fmt.Errorf("%w: %s: %v", ErrStorage, action, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, action, err)
}
