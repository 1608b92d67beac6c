package expire_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// UseCase use case для перевода неначатых бронирований в no_show
type UseCase struct {
	bookingRepo  BookingRepository
	pointRepo    PointRepository
	metrics      Metrics
	txManager    TransactionManager
	settings     domain.BookingSettings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	pointRepo PointRepository,
	metrics Metrics,
	txManager TransactionManager,
	settings domain.BookingSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pointRepo:    pointRepo,
		metrics:      metrics,
		txManager:    txManager,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит в no_show запланированные бронирования, начало которых
// раньше now - grace (включая прошлые даты), и освобождает их точки.
// Каждое бронирование переводится отдельной транзакцией через compare-and-set,
// поэтому повторный вызов с тем же now ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и значения по умолчанию
	grace := uc.settings.GraceMinutes
	if req.GraceMinutes != nil {
		if *req.GraceMinutes < 0 {
			return nil, fmt.Errorf("%w: grace minutes must be non-negative", ErrInvalidInput)
		}
		grace = *req.GraceMinutes
	}

	now := req.Now
	if now.IsZero() {
		now = uc.timeProvider.Now()
	}
	now = uc.settings.In(now)

	cutoff := now.Add(-time.Duration(grace) * time.Minute)

	// 2. Получаем кандидатов
	stale, err := uc.bookingRepo.GetStale(ctx, cutoff)
	if err != nil {
		uc.logger.Error("ExpireBookings: failed to get stale bookings: %v", err)
		return nil, storageError("failed to get stale bookings", err)
	}

	expired := make([]int64, 0, len(stale))

	// 3. Переводим каждое бронирование отдельно
	for _, booking := range stale {
		var transitioned bool

		err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
			ok, err := uc.bookingRepo.CompareAndSetStatus(txCtx, booking.ID, domain.StatusScheduled, domain.StatusNoShow)
			if err != nil {
				return fmt.Errorf("failed to set no_show: %w", err)
			}
			// Бронирование уже начато или отменено параллельно
			if !ok {
				return nil
			}

			if err := uc.pointRepo.SyncPointStatus(txCtx, booking.ChargingPointID); err != nil {
				return fmt.Errorf("failed to release point: %w", err)
			}

			transitioned = true
			return nil
		})

		if err != nil {
			uc.logger.Error("ExpireBookings: booking id=%d: %v", booking.ID, err)
			uc.metrics.BookingsExpired(len(expired))
			return nil, storageError(fmt.Sprintf("booking id=%d", booking.ID), err)
		}

		if !transitioned {
			uc.logger.Info("ExpireBookings: booking id=%d changed status concurrently, skipped", booking.ID)
			continue
		}

		uc.metrics.BookingTransition(string(domain.StatusScheduled), string(domain.StatusNoShow))
		expired = append(expired, booking.ID)
	}

	uc.metrics.BookingsExpired(len(expired))

	if len(expired) > 0 {
		uc.logger.Info("ExpireBookings: cutoff=%s, expired %d bookings: %v", cutoff.Format(time.RFC3339), len(expired), expired)
	}

	return &Response{Cutoff: cutoff, ExpiredIDs: expired}, nil
}
