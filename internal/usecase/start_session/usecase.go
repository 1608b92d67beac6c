package start_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	bookingRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/booking"
)

// UseCase use case для начала зарядной сессии по бронированию
type UseCase struct {
	bookingRepo  BookingRepository
	pointRepo    PointRepository
	logRepo      ChargingLogRepository
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	pointRepo PointRepository,
	logRepo ChargingLogRepository,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pointRepo:    pointRepo,
		logRepo:      logRepo,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит бронирование scheduled -> active, точку в in_use
// и создает запись о сессии in_progress
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartSession: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var result *domain.ChargingLog

	// 2. Все изменения в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to get booking: %w", err)
		}

		// 2.2. Чужое бронирование выглядит как несуществующее
		if !req.IsAdmin && booking.UserID != req.UserID {
			return ErrBookingNotFound
		}

		if booking.Status != domain.StatusScheduled {
			return fmt.Errorf("%w: current status %s", ErrInvalidStatus, booking.Status)
		}

		// 2.3. Точка на обслуживании не принимает сессии
		point, err := uc.pointRepo.GetPointByID(txCtx, booking.ChargingPointID)
		if err != nil {
			return fmt.Errorf("failed to get point: %w", err)
		}
		if point.Status == domain.PointMaintenance {
			return ErrPointUnderMaintenance
		}

		// 2.4. Compare-and-set защищает от параллельного истечения или отмены
		ok, err := uc.bookingRepo.CompareAndSetStatus(txCtx, booking.ID, domain.StatusScheduled, domain.StatusActive)
		if err != nil {
			return fmt.Errorf("failed to activate booking: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: status changed concurrently", ErrInvalidStatus)
		}

		// 2.5. Точка с активным бронированием переходит в in_use
		if err := uc.pointRepo.SyncPointStatus(txCtx, booking.ChargingPointID); err != nil {
			return fmt.Errorf("failed to update point status: %w", err)
		}

		// 2.6. Создаем запись о сессии
		created, err := uc.logRepo.Create(txCtx, &domain.ChargingLog{
			BookingID:       booking.ID,
			UserID:          booking.UserID,
			ChargingPointID: booking.ChargingPointID,
			StartTime:       now,
			Status:          domain.LogInProgress,
		})
		if err != nil {
			return fmt.Errorf("failed to create charging log: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("StartSession: booking id=%d not found for user=%d", req.BookingID, req.UserID)
			return nil, err
		case errors.Is(err, ErrInvalidStatus):
			uc.logger.Warn("StartSession: booking id=%d: %v", req.BookingID, err)
			return nil, err
		case errors.Is(err, ErrPointUnderMaintenance):
			uc.logger.Warn("StartSession: point of booking id=%d is under maintenance", req.BookingID)
			return nil, err
		default:
			uc.logger.Error("StartSession: transaction failed for booking id=%d: %v", req.BookingID, err)
			return nil, storageError("transaction failed", err)
		}
	}

	uc.metrics.BookingTransition(string(domain.StatusScheduled), string(domain.StatusActive))
	uc.logger.Info("StartSession: started charging log id=%d for booking id=%d", result.ID, req.BookingID)

	return &Response{
		LogID:           result.ID,
		BookingID:       result.BookingID,
		UserID:          result.UserID,
		ChargingPointID: result.ChargingPointID,
		StartTime:       result.StartTime,
		Status:          string(result.Status),
	}, nil
}
