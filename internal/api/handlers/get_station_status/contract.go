package get_station_status

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

type StationService interface {
	GetStatus(ctx context.Context, stationID int64) (*models.StationStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
