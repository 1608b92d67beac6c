package check_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
)

var (
	// ErrPointNotFound возвращается, когда зарядная точка не найдена
	ErrPointNotFound = fmt.Errorf("check_availability: charging point not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("check_availability: invalid input data: %w", domain.ErrInvalidInput)

	// ErrStorage возвращается при таймауте или ошибке соединения с БД
	ErrStorage = fmt.Errorf("check_availability: storage failure: %w", domain.ErrStorageFailure)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)

// storageError различает повторяемые ошибки хранилища и прочие
func storageError(action string, err error) error {
	if dberrors.IsTransient(err) {
		return fmt.Errorf("%w: %s: %v", ErrStorage, action, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, action, err)
}
