package stations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	stationRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/station"
	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

// Service сервис каталога станций
type Service struct {
	stationRepo StationRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса станций
func NewService(stationRepo StationRepository, logger Logger) *Service {
	return &Service{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// List возвращает станции со счетчиками точек
// При onlyAvailable возвращаются только станции со свободными точками
func (s *Service) List(ctx context.Context, onlyAvailable bool) (*models.StationListResponse, error) {
	s.logger.Info("List: fetching stations, onlyAvailable=%t", onlyAvailable)

	summaries, err := s.stationRepo.ListStationSummaries(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, storageError("List - repository error", err)
	}

	s.logger.Info("List: successfully fetched %d stations", len(summaries))
	return models.FromDomainSummaryList(summaries), nil
}

// GetStatus возвращает станцию со всеми точками и данными их колонок
func (s *Service) GetStatus(ctx context.Context, stationID int64) (*models.StationStatusResponse, error) {
	s.logger.Info("GetStatus: fetching station id=%d", stationID)

	station, err := s.stationRepo.GetStationByID(ctx, stationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			s.logger.Warn("GetStatus: station id=%d not found", stationID)
			return nil, ErrStationNotFound
		}
		s.logger.Error("GetStatus: repository error for station id=%d: %v", stationID, err)
		return nil, storageError("GetStatus - repository error", err)
	}

	points, err := s.stationRepo.ListPointDetails(ctx, stationID)
	if err != nil {
		s.logger.Error("GetStatus: failed to list points of station id=%d: %v", stationID, err)
		return nil, storageError("GetStatus - failed to list points", err)
	}

	s.logger.Info("GetStatus: station id=%d has %d points", stationID, len(points))
	return models.FromDomainStationStatus(&domain.StationStatus{Station: *station, Points: points}), nil
}

// CreateStation создает станцию
func (s *Service) CreateStation(ctx context.Context, req *models.CreateStationRequest) (*models.StationResponse, error) {
	s.logger.Info("CreateStation: creating station name=%q", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("CreateStation: empty station name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.stationRepo.CreateStation(ctx, req.ToDomainStation())
	if err != nil {
		s.logger.Error("CreateStation: repository error: %v", err)
		return nil, storageError("CreateStation - repository error", err)
	}

	s.logger.Info("CreateStation: successfully created station id=%d", created.ID)
	return models.FromDomainStation(created), nil
}

// CreateColumn создает колонку на станции
func (s *Service) CreateColumn(ctx context.Context, req *models.CreateColumnRequest) (*models.ColumnResponse, error) {
	s.logger.Info("CreateColumn: creating column number=%d at station id=%d", req.ColumnNumber, req.StationID)

	if req.ColumnNumber <= 0 {
		return nil, fmt.Errorf("%w: columnNumber must be positive", ErrInvalidInput)
	}
	if req.PowerKW <= 0 {
		return nil, fmt.Errorf("%w: powerKw must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ConnectorType) == "" {
		return nil, fmt.Errorf("%w: connectorType is required", ErrInvalidInput)
	}

	created, err := s.stationRepo.CreateColumn(ctx, &domain.Column{
		StationID:     req.StationID,
		ColumnNumber:  req.ColumnNumber,
		PowerKW:       req.PowerKW,
		ConnectorType: req.ConnectorType,
	})
	if err != nil {
		switch {
		case errors.Is(err, stationRepo.ErrStationNotFound):
			s.logger.Warn("CreateColumn: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		case errors.Is(err, stationRepo.ErrDuplicate):
			s.logger.Warn("CreateColumn: column number=%d already exists at station id=%d", req.ColumnNumber, req.StationID)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("CreateColumn: repository error: %v", err)
		return nil, storageError("CreateColumn - repository error", err)
	}

	s.logger.Info("CreateColumn: successfully created column id=%d", created.ID)
	return models.FromDomainColumn(created), nil
}

// CreatePoint создает зарядную точку на колонке, новая точка свободна
func (s *Service) CreatePoint(ctx context.Context, req *models.CreatePointRequest) (*models.PointResponse, error) {
	s.logger.Info("CreatePoint: creating point number=%d at column id=%d", req.PointNumber, req.ColumnID)

	if req.PointNumber <= 0 {
		return nil, fmt.Errorf("%w: pointNumber must be positive", ErrInvalidInput)
	}

	created, err := s.stationRepo.CreatePoint(ctx, &domain.ChargingPoint{
		ColumnID:    req.ColumnID,
		PointNumber: req.PointNumber,
		Status:      domain.PointAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, stationRepo.ErrColumnNotFound):
			s.logger.Warn("CreatePoint: column id=%d not found", req.ColumnID)
			return nil, ErrColumnNotFound
		case errors.Is(err, stationRepo.ErrDuplicate):
			s.logger.Warn("CreatePoint: point number=%d already exists at column id=%d", req.PointNumber, req.ColumnID)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("CreatePoint: repository error: %v", err)
		return nil, storageError("CreatePoint - repository error", err)
	}

	s.logger.Info("CreatePoint: successfully created point id=%d", created.ID)
	return models.FromDomainPoint(created), nil
}

// SetPointStatus переводит точку на обслуживание или возвращает в работу.
// На обслуживание можно перевести только свободную точку,
// вернуть в работу - только точку на обслуживании.
func (s *Service) SetPointStatus(ctx context.Context, pointID int64, req *models.SetPointStatusRequest) (*models.PointResponse, error) {
	s.logger.Info("SetPointStatus: point id=%d -> %s", pointID, req.Status)

	var expected domain.PointStatus
	next := domain.PointStatus(req.Status)
	switch next {
	case domain.PointMaintenance:
		expected = domain.PointAvailable
	case domain.PointAvailable:
		expected = domain.PointMaintenance
	default:
		s.logger.Warn("SetPointStatus: unsupported status=%s", req.Status)
		return nil, fmt.Errorf("%w: status must be %s or %s", ErrInvalidInput, domain.PointMaintenance, domain.PointAvailable)
	}

	ok, err := s.stationRepo.SetPointStatusIf(ctx, pointID, expected, next)
	if err != nil {
		s.logger.Error("SetPointStatus: repository error for point id=%d: %v", pointID, err)
		return nil, storageError("SetPointStatus - repository error", err)
	}

	// Вернувшаяся в работу точка снова отражает свои бронирования
	if ok && next == domain.PointAvailable {
		if err := s.stationRepo.SyncPointStatus(ctx, pointID); err != nil {
			s.logger.Error("SetPointStatus: failed to sync point id=%d: %v", pointID, err)
			return nil, storageError("SetPointStatus - sync status", err)
		}
	}

	point, err := s.stationRepo.GetPointByID(ctx, pointID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrPointNotFound) {
			s.logger.Warn("SetPointStatus: point id=%d not found", pointID)
			return nil, ErrPointNotFound
		}
		s.logger.Error("SetPointStatus: repository error for point id=%d: %v", pointID, err)
		return nil, storageError("SetPointStatus - repository error", err)
	}

	if !ok {
		s.logger.Warn("SetPointStatus: point id=%d is %s, expected %s", pointID, point.Status, expected)
		return nil, fmt.Errorf("%w: point is %s", ErrPointBusy, point.Status)
	}

	s.logger.Info("SetPointStatus: point id=%d is now %s", pointID, point.Status)
	return models.FromDomainPoint(point), nil
}
