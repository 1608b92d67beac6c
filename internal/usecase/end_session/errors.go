package end_session

import (
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или принадлежит другому пользователю
	ErrSessionNotFound = fmt.Errorf("end_session: charging session not found: %w", domain.ErrNotFound)

	// ErrSessionNotInProgress возвращается при повторном завершении сессии
	ErrSessionNotInProgress = fmt.Errorf("end_session: charging session is not in progress: %w", domain.ErrInvalidState)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("end_session: invalid input data: %w", domain.ErrInvalidInput)

	// ErrStorage возвращается при таймауте или ошибке соединения с БД
	ErrStorage = fmt.Errorf("end_session: storage failure: %w", domain.ErrStorageFailure)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("end_session: internal error")
)

// storageError различает повторяемые ошибки хранилища и прочие
func storageError(action string, err error) error {
	if dberrors.IsTransient(err) {
		return fmt.Errorf("%w: %s: %v", ErrStorage, action, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, action, err)
}
