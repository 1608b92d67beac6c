package get_user_stats

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/service/stats/models"
)

type StatsService interface {
	GetUserStats(ctx context.Context, userID int64) (*models.UserStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
