package expiration

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
)

// Expirer интерфейс use case истечения бронирований
type Expirer interface {
	Execute(ctx context.Context, req *expire_bookings.Request) (*expire_bookings.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
