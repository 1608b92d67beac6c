package get_available_slots

import (
	"context"
	"errors"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	stationRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/station"
)

// UseCase use case для получения свободных окон на зарядной точке
type UseCase struct {
	bookingRepo  BookingRepository
	pointRepo    PointRepository
	settings     domain.BookingSettings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	pointRepo PointRepository,
	settings domain.BookingSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pointRepo:    pointRepo,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: point=%d, date=%s, duration=%d",
		req.ChargingPointID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.settings.DefaultDurationMinutes
	}
	interval := req.IntervalMinutes
	if interval == 0 {
		interval = uc.settings.SlotIntervalMinutes
	}

	// 2. Текущее время в часовом поясе станции
	now := uc.settings.In(uc.timeProvider.Now())

	// 3. Проверяем существование точки
	if _, err := uc.pointRepo.GetPointByID(ctx, req.ChargingPointID); err != nil {
		if errors.Is(err, stationRepo.ErrPointNotFound) {
			uc.logger.Warn("GetAvailableSlots: point id=%d not found", req.ChargingPointID)
			return nil, ErrPointNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get point id=%d: %v", req.ChargingPointID, err)
		return nil, storageError("failed to get point", err)
	}

	// 4. Получаем все незавершенные бронирования точки на дату
	bookings, err := uc.bookingRepo.FindOverlapping(ctx, domain.OverlapQuery{
		ChargingPointID: req.ChargingPointID,
		Date:            req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, storageError("failed to get bookings", err)
	}

	// 5. Перебираем окна и убираем прошедшие
	slots := listAvailableSlots(uc.settings.OperatingHours, duration, interval, bookedWindows(bookings))
	slots = dropPastSlots(slots, req.Date, now)

	uc.logger.Info("GetAvailableSlots: point=%d, found %d free slots", req.ChargingPointID, len(slots))

	return &Response{
		ChargingPointID: req.ChargingPointID,
		Date:            req.Date,
		DurationMinutes: duration,
		IntervalMinutes: interval,
		Slots:           slots,
	}, nil
}
