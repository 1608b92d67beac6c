package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, q domain.OverlapQuery) ([]*domain.Booking, error)
}

// PointRepository интерфейс репозитория зарядных точек
type PointRepository interface {
	GetPointByID(ctx context.Context, id int64) (*domain.ChargingPoint, error)
	SyncPointStatus(ctx context.Context, id int64) error
}

// Notifier интерфейс отправки уведомлений пользователю
type Notifier interface {
	Notify(ctx context.Context, userID int64, typ domain.NotificationType, message string) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingCreated()
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
