package models

import (
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений, новые первыми
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(items []domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(items)),
	}

	for _, n := range items {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Type:      string(n.Type),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}

	return resp
}
