package check_availability

import (
	"context"
	"errors"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	stationRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/station"
	"github.com/m04kA/EV-ChargingService/pkg/ptr"
)

// UseCase use case для проверки, свободно ли окно на зарядной точке
type UseCase struct {
	bookingRepo BookingRepository
	pointRepo   PointRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, pointRepo PointRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		pointRepo:   pointRepo,
		logger:      logger,
	}
}

// Execute проверяет окно [start, end) на дату.
// Ничего не меняет; внутри транзакции найденные бронирования блокируются репозиторием.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование точки
	if _, err := uc.pointRepo.GetPointByID(ctx, req.ChargingPointID); err != nil {
		if errors.Is(err, stationRepo.ErrPointNotFound) {
			uc.logger.Warn("CheckAvailability: point id=%d not found", req.ChargingPointID)
			return nil, ErrPointNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get point id=%d: %v", req.ChargingPointID, err)
		return nil, storageError("failed to get point", err)
	}

	// 3. Получаем пересекающиеся незавершенные бронирования
	bookings, err := uc.bookingRepo.FindOverlapping(ctx, domain.OverlapQuery{
		ChargingPointID:  req.ChargingPointID,
		Date:             req.Date,
		Window:           &window,
		ExcludeBookingID: req.ExcludeBookingID,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to find overlapping bookings: %v", err)
		return nil, storageError("failed to find overlapping bookings", err)
	}

	// 4. Решение принимается по полуоткрытым интервалам
	conflict := domain.FindConflict(window, bookings, req.ExcludeBookingID)
	if conflict != nil {
		return &Response{Available: false, ConflictBookingID: ptr.Ptr(conflict.ID)}, nil
	}

	return &Response{Available: true}, nil
}
