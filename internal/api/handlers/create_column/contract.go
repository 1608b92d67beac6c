package create_column

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

type StationService interface {
	CreateColumn(ctx context.Context, req *models.CreateColumnRequest) (*models.ColumnResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
