package stats

import (
	"context"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// ChargingLogRepository интерфейс репозитория зарядных сессий
type ChargingLogRepository interface {
	AggregateCompleted(ctx context.Context, userID int64, from, to *time.Time) (domain.StatsBucket, error)
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
