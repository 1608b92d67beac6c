package stations

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// StationRepository интерфейс репозитория станций, колонок и зарядных точек
type StationRepository interface {
	CreateStation(ctx context.Context, station *domain.Station) (*domain.Station, error)
	GetStationByID(ctx context.Context, id int64) (*domain.Station, error)
	ListStationSummaries(ctx context.Context, onlyAvailable bool) ([]*domain.StationSummary, error)
	CreateColumn(ctx context.Context, column *domain.Column) (*domain.Column, error)
	CreatePoint(ctx context.Context, point *domain.ChargingPoint) (*domain.ChargingPoint, error)
	GetPointByID(ctx context.Context, id int64) (*domain.ChargingPoint, error)
	ListPointDetails(ctx context.Context, stationID int64) ([]domain.PointDetails, error)
	SetPointStatusIf(ctx context.Context, id int64, expected, next domain.PointStatus) (bool, error)
	SyncPointStatus(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
