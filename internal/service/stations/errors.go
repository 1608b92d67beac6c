package stations

import (
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
)

var (
	// ErrStationNotFound возвращается, когда станция не найдена
	ErrStationNotFound = fmt.Errorf("station not found: %w", domain.ErrNotFound)

	// ErrColumnNotFound возвращается, когда колонка не найдена
	ErrColumnNotFound = fmt.Errorf("column not found: %w", domain.ErrNotFound)

	// ErrPointNotFound возвращается, когда зарядная точка не найдена
	ErrPointNotFound = fmt.Errorf("charging point not found: %w", domain.ErrNotFound)

	// ErrAlreadyExists возвращается при повторном номере колонки на станции или точки на колонке
	ErrAlreadyExists = fmt.Errorf("number already taken: %w", domain.ErrInvalidState)

	// ErrPointBusy возвращается при попытке перевести занятую точку на обслуживание
	ErrPointBusy = fmt.Errorf("charging point is not in the required status: %w", domain.ErrInvalidState)

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
