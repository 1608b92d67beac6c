package check_availability

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.Booking, error)
}

// PointRepository интерфейс репозитория зарядных точек
type PointRepository interface {
	GetPointByID(ctx context.Context, id int64) (*domain.ChargingPoint, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
