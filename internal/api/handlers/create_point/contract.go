package create_point

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

type StationService interface {
	CreatePoint(ctx context.Context, req *models.CreatePointRequest) (*models.PointResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
