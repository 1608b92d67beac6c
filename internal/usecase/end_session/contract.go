package end_session

import (
	"context"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CompareAndSetStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (bool, error)
}

// PointRepository интерфейс репозитория зарядных точек
type PointRepository interface {
	SyncPointStatus(ctx context.Context, id int64) error
}

// ChargingLogRepository интерфейс репозитория зарядных сессий
type ChargingLogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ChargingLog, error)
	Complete(ctx context.Context, id int64, endTime time.Time, energyKwh, cost float64) (bool, error)
}

// Notifier интерфейс отправки уведомлений пользователю
type Notifier interface {
	Notify(ctx context.Context, userID int64, typ domain.NotificationType, message string) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingTransition(from, to string)
	SessionCompleted(energyKwh float64)
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
