package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	notificationStore "github.com/m04kA/EV-ChargingService/internal/infra/notifications"
	"github.com/m04kA/EV-ChargingService/internal/service/notifications/models"
)

// Service сервис пользовательских уведомлений
type Service struct {
	store        NotificationStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(store NotificationStore, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Notify ставит уведомление в очередь пользователя
func (s *Service) Notify(ctx context.Context, userID int64, typ domain.NotificationType, message string) error {
	n := domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Message:   message,
		CreatedAt: s.timeProvider.Now().UTC(),
	}

	if err := s.store.Push(ctx, n); err != nil {
		s.logger.Error("Notify: failed to push notification for user=%d: %v", userID, err)
		return classify(err)
	}

	s.logger.Info("Notify: queued %s notification id=%s for user=%d", typ, n.ID, userID)
	return nil
}

// List возвращает последние уведомления пользователя, новые первыми.
// limit = 0 означает лимит по умолчанию
func (s *Service) List(ctx context.Context, userID int64, limit int) (*models.NotificationListResponse, error) {
	s.logger.Info("List: fetching notifications for user=%d, limit=%d", userID, limit)

	if limit == 0 {
		limit = domain.DefaultNotificationsLimit
	}
	if limit < 0 || limit > domain.MaxNotificationsLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxNotificationsLimit)
	}

	items, err := s.store.List(ctx, userID, limit)
	if err != nil {
		s.logger.Error("List: failed to list notifications for user=%d: %v", userID, err)
		return nil, classify(err)
	}

	s.logger.Info("List: fetched %d notifications for user=%d", len(items), userID)
	return models.FromDomainNotificationList(items), nil
}

func classify(err error) error {
	if errors.Is(err, notificationStore.ErrRedis) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
