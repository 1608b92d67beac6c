package notifications

import (
	"context"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// NotificationStore интерфейс хранилища уведомлений
type NotificationStore interface {
	Push(ctx context.Context, n domain.Notification) error
	List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
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
