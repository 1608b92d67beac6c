package bookings

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CompareAndSetStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (bool, error)
}

// PointRepository интерфейс репозитория зарядных точек
type PointRepository interface {
	SyncPointStatus(ctx context.Context, id int64) error
}

// ChargingLogRepository интерфейс репозитория зарядных сессий
type ChargingLogRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.ChargingLog, error)
}

// Notifier интерфейс отправки уведомлений пользователю
type Notifier interface {
	Notify(ctx context.Context, userID int64, typ domain.NotificationType, message string) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingTransition(from, to string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
