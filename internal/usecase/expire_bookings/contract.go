package expire_bookings

import (
	"context"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetStale(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
	CompareAndSetStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (bool, error)
}

// PointRepository интерфейс репозитория зарядных точек
type PointRepository interface {
	SyncPointStatus(ctx context.Context, id int64) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingTransition(from, to string)
	BookingsExpired(count int)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
