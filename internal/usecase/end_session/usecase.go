package end_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	logRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/charging_log"
)

// UseCase use case для завершения зарядной сессии
type UseCase struct {
	bookingRepo  BookingRepository
	pointRepo    PointRepository
	logRepo      ChargingLogRepository
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
	logRepo ChargingLogRepository,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	settings domain.BookingSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pointRepo:    pointRepo,
		logRepo:      logRepo,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute завершает сессию: фиксирует энергию и стоимость,
// бронирование переходит active -> completed, точка освобождается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EndSession: log=%d, user=%d, energy=%.4f", req.LogID, req.UserID, req.EnergyConsumed)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EndSession: validation failed: %v", err)
		return nil, err
	}

	endTime := uc.timeProvider.Now()
	cost := domain.ChargingCost(req.EnergyConsumed, uc.settings.PricePerKwh)

	var session *domain.ChargingLog

	// 2. Все изменения в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем запись о сессии с блокировкой
		log, err := uc.logRepo.GetByID(txCtx, req.LogID)
		if err != nil {
			if errors.Is(err, logRepo.ErrLogNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get charging log: %w", err)
		}

		if !req.IsAdmin && log.UserID != req.UserID {
			return ErrSessionNotFound
		}

		if log.Status != domain.LogInProgress {
			return ErrSessionNotInProgress
		}

		// 2.2. Завершаем сессию только из in_progress
		ok, err := uc.logRepo.Complete(txCtx, log.ID, endTime, req.EnergyConsumed, cost)
		if err != nil {
			return fmt.Errorf("failed to complete charging log: %w", err)
		}
		if !ok {
			return ErrSessionNotInProgress
		}

		// 2.3. Бронирование active -> completed
		ok, err = uc.bookingRepo.CompareAndSetStatus(txCtx, log.BookingID, domain.StatusActive, domain.StatusCompleted)
		if err != nil {
			return fmt.Errorf("failed to complete booking: %w", err)
		}
		if !ok {
			uc.logger.Warn("EndSession: booking id=%d of log id=%d was not active", log.BookingID, log.ID)
		}

		// 2.4. Освобождаем точку: available или reserved под следующее бронирование
		if err := uc.pointRepo.SyncPointStatus(txCtx, log.ChargingPointID); err != nil {
			return fmt.Errorf("failed to release point: %w", err)
		}

		log.EndTime = &endTime
		log.EnergyConsumed = req.EnergyConsumed
		log.Cost = cost
		log.Status = domain.LogCompleted
		session = log
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			uc.logger.Warn("EndSession: log id=%d not found for user=%d", req.LogID, req.UserID)
			return nil, err
		case errors.Is(err, ErrSessionNotInProgress):
			uc.logger.Warn("EndSession: log id=%d is not in progress", req.LogID)
			return nil, err
		default:
			uc.logger.Error("EndSession: transaction failed for log id=%d: %v", req.LogID, err)
			return nil, storageError("transaction failed", err)
		}
	}

	uc.metrics.BookingTransition(string(domain.StatusActive), string(domain.StatusCompleted))
	uc.metrics.SessionCompleted(session.EnergyConsumed)
	uc.logger.Info("EndSession: log id=%d completed, energy=%.4f kWh, cost=%.4f", session.ID, session.EnergyConsumed, session.Cost)

	// 3. Итог сессии отправляется пользователю после коммита
	message := domain.SessionEndedMessage(session.EnergyConsumed, session.Cost)
	if err := uc.notifier.Notify(ctx, session.UserID, domain.NotificationSystem, message); err != nil {
		uc.logger.Warn("EndSession: failed to notify user=%d about log id=%d: %v", session.UserID, session.ID, err)
	}

	return &Response{
		LogID:           session.ID,
		BookingID:       session.BookingID,
		UserID:          session.UserID,
		ChargingPointID: session.ChargingPointID,
		StartTime:       session.StartTime,
		EndTime:         endTime,
		EnergyConsumed:  session.EnergyConsumed,
		Cost:            session.Cost,
		Status:          string(session.Status),
	}, nil
}
