package start_session

import (
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или принадлежит другому пользователю
	ErrBookingNotFound = fmt.Errorf("start_session: booking not found: %w", domain.ErrNotFound)

	// ErrInvalidStatus возвращается, когда бронирование не в статусе scheduled
	ErrInvalidStatus = fmt.Errorf("start_session: booking is not scheduled: %w", domain.ErrInvalidState)

	// ErrPointUnderMaintenance возвращается, когда точка бронирования на обслуживании
	ErrPointUnderMaintenance = fmt.Errorf("start_session: charging point is under maintenance: %w", domain.ErrInvalidState)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("start_session: invalid input data: %w", domain.ErrInvalidInput)

	// ErrStorage возвращается при таймауте или ошибке соединения с БД
	ErrStorage = fmt.Errorf("start_session: storage failure: %w", domain.ErrStorageFailure)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_session: internal error")
)

// storageError различает повторяемые ошибки хранилища и прочие
func storageError(action string, err error) error {
	if dberrors.IsTransient(err) {
		return fmt.Errorf("%w: %s: %v", ErrStorage, action, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, action, err)
}
