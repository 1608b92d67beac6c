package set_point_status

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

type StationService interface {
	SetPointStatus(ctx context.Context, pointID int64, req *models.SetPointStatusRequest) (*models.PointResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
