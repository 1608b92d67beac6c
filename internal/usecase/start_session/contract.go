package start_session

import (
	"context"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CompareAndSetStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (bool, error)
}

// PointRepository интерфейс репозитория зарядных точек
type PointRepository interface {
	GetPointByID(ctx context.Context, id int64) (*domain.ChargingPoint, error)
	SyncPointStatus(ctx context.Context, id int64) error
}

// ChargingLogRepository интерфейс репозитория зарядных сессий
type ChargingLogRepository interface {
	Create(ctx context.Context, log *domain.ChargingLog) (*domain.ChargingLog, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingTransition(from, to string)
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
