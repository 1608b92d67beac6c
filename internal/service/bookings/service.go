package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	bookingRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/booking"
	logRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/charging_log"
	"github.com/m04kA/EV-ChargingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	pointRepo   PointRepository
	logRepo     ChargingLogRepository
	notifier    Notifier
	metrics     Metrics
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	pointRepo PointRepository,
	logRepo ChargingLogRepository,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		pointRepo:   pointRepo,
		logRepo:     logRepo,
		notifier:    notifier,
		metrics:     metrics,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, storageError("GetByID - repository error", err)
	}

	// Проверяем права доступа
	if !isAdmin && booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, storageError("GetUserBookings - repository error", err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBookings получает бронирования с фильтрацией для администратора
// Поддерживает фильтрацию по точке, пользователю, дате и статусу
func (s *Service) GetBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetBookings: fetching bookings"
	if req.ChargingPointID != nil {
		logMsg += fmt.Sprintf(", point=%d", *req.ChargingPointID)
	}
	if req.UserID != nil {
		logMsg += fmt.Sprintf(", user=%d", *req.UserID)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBookings: repository error: %v", err)
		return nil, storageError("GetBookings - repository error", err)
	}

	s.logger.Info("GetBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetSession получает зарядную сессию бронирования.
// Права доступа к бронированию проверяются через GetByID
func (s *Service) GetSession(ctx context.Context, bookingID int64) (*models.SessionResponse, error) {
	s.logger.Info("GetSession: fetching session of booking id=%d", bookingID)

	log, err := s.logRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, logRepo.ErrLogNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetSession: repository error for booking id=%d: %v", bookingID, err)
		return nil, storageError("GetSession - repository error", err)
	}

	return models.FromDomainChargingLog(log), nil
}

// Cancel отменяет бронирование пользователя
// Отменить можно только своё бронирование в статусе scheduled,
// точка освобождается в той же транзакции
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Получаем бронирование с блокировкой
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to get booking: %w", err)
		}

		// Чужое бронирование выглядит как несуществующее
		if booking.UserID != userID {
			return ErrBookingNotFound
		}

		if !booking.Status.CanTransitionTo(domain.StatusCancelled) {
			return fmt.Errorf("%w: status %s", ErrCannotCancel, booking.Status)
		}

		ok, err := s.bookingRepo.CompareAndSetStatus(txCtx, booking.ID, domain.StatusScheduled, domain.StatusCancelled)
		if err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: status changed concurrently", ErrCannotCancel)
		}

		if err := s.pointRepo.SyncPointStatus(txCtx, booking.ChargingPointID); err != nil {
			return fmt.Errorf("failed to release point: %w", err)
		}

		booking.Status = domain.StatusCancelled
		cancelled = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found for user=%d", bookingID, userID)
			return nil, err
		case errors.Is(err, ErrCannotCancel):
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled: %v", bookingID, err)
			return nil, err
		default:
			s.logger.Error("Cancel: transaction failed for booking id=%d: %v", bookingID, err)
			return nil, storageError("Cancel - transaction failed", err)
		}
	}

	s.metrics.BookingTransition(string(domain.StatusScheduled), string(domain.StatusCancelled))
	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)

	message := domain.BookingCancelledMessage(cancelled.BookingDate, cancelled.StartTime)
	if err := s.notifier.Notify(ctx, cancelled.UserID, domain.NotificationBooking, message); err != nil {
		s.logger.Warn("Cancel: failed to notify user=%d about booking id=%d: %v", cancelled.UserID, bookingID, err)
	}

	return models.FromDomainBooking(cancelled), nil
}
