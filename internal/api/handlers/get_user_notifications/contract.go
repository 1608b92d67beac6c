package get_user_notifications

import (
	"context"

	"github.com/m04kA/EV-ChargingService/internal/service/notifications/models"
)

type NotificationService interface {
	List(ctx context.Context, userID int64, limit int) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
