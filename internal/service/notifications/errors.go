package notifications

import (
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrInvalidInput)

	// ErrUnavailable возвращается, когда хранилище уведомлений недоступно
	ErrUnavailable = fmt.Errorf("notifications: store unavailable: %w", domain.ErrStorageFailure)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
