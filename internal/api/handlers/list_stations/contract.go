package list_stations

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

type StationService interface {
	List(ctx context.Context, onlyAvailable bool) (*models.StationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
