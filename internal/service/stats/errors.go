package stats

import (
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
)

var (
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
