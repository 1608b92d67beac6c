package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	stationRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/station"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	pointRepo    PointRepository
	notifier     Notifier
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
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	settings domain.BookingSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pointRepo:    pointRepo,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка окна и запись выполняются в одной сериализуемой транзакции,
// проигравший в гонке за точку получает ErrSlotUnavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, point=%d, date=%s, window=%s-%s",
		req.UserID, req.ChargingPointID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе станции
	now := uc.settings.In(uc.timeProvider.Now())

	// 3. Валидация даты, времени и часов работы
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}
	if err := validateOperatingHours(window, uc.settings); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем строку точки (FOR UPDATE), конкурирующие create на ней ждут
		point, err := uc.pointRepo.GetPointByID(txCtx, req.ChargingPointID)
		if err != nil {
			if errors.Is(err, stationRepo.ErrPointNotFound) {
				return ErrPointNotFound
			}
			return fmt.Errorf("failed to get point: %w", err)
		}

		if point.Status == domain.PointMaintenance {
			return ErrPointUnderMaintenance
		}

		// 4.2. Получаем пересекающиеся незавершенные бронирования с блокировкой
		bookings, err := uc.bookingRepo.FindOverlapping(txCtx, domain.OverlapQuery{
			ChargingPointID: req.ChargingPointID,
			Date:            req.Date,
			Window:          &window,
		})
		if err != nil {
			return fmt.Errorf("failed to find overlapping bookings: %w", err)
		}

		// 4.3. Проверяем доступность окна
		if conflict := domain.FindConflict(window, bookings, nil); conflict != nil {
			uc.logger.Warn("CreateBooking: window %s on point=%d conflicts with booking id=%d (%s)",
				window, req.ChargingPointID, conflict.ID, conflict.Window())
			return ErrSlotUnavailable
		}

		// 4.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:          req.UserID,
			ChargingPointID: req.ChargingPointID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Status:          domain.StatusScheduled,
		})
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// 4.5. Статус точки пересчитывается вместе с бронированием
		if err := uc.pointRepo.SyncPointStatus(txCtx, req.ChargingPointID); err != nil {
			return fmt.Errorf("failed to reserve point: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.classify(req, err)
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Уведомление отправляется после коммита, его ошибка не отменяет бронирование
	message := domain.BookingCreatedMessage(result.BookingDate, result.StartTime)
	if err := uc.notifier.Notify(ctx, result.UserID, domain.NotificationBooking, message); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify user=%d about booking id=%d: %v", result.UserID, result.ID, err)
	}

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ChargingPointID: result.ChargingPointID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// classify приводит ошибку транзакции к ошибке use case
func (uc *UseCase) classify(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrPointNotFound):
		uc.logger.Warn("CreateBooking: point id=%d not found", req.ChargingPointID)
		return err
	case errors.Is(err, ErrPointUnderMaintenance), errors.Is(err, ErrSlotUnavailable):
		return err
	case dberrors.IsSerializationFailure(err), dberrors.IsUniqueViolation(err):
		// Конкурентная транзакция заняла точку раньше
		uc.logger.Warn("CreateBooking: lost race for point=%d: %v", req.ChargingPointID, err)
		return fmt.Errorf("%w: concurrent booking: %v", ErrSlotUnavailable, err)
	default:
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return storageError("transaction failed", err)
	}
}
