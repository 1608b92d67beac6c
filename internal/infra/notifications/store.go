package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// Store хранит уведомления пользователя в Redis списке, новые в голове.
// Список ограничен maxItems и живет ttl с момента последней записи.
type Store struct {
	client   redis.Cmdable
	ttl      time.Duration
	maxItems int64
}

// NewStore создает хранилище уведомлений поверх Redis
func NewStore(client redis.Cmdable, ttl time.Duration, maxItems int) *Store {
	if maxItems <= 0 {
		maxItems = domain.MaxNotificationsLimit
	}
	return &Store{client: client, ttl: ttl, maxItems: int64(maxItems)}
}

// Push добавляет уведомление в список пользователя
func (s *Store) Push(ctx context.Context, n domain.Notification) error {
	data, err := encode(n)
	if err != nil {
		return err
	}

	key := userKey(n.UserID)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, s.maxItems-1)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Push - user %d: %w", ErrRedis, n.UserID, err)
	}

	return nil
}

// List возвращает последние limit уведомлений пользователя, новые первыми
func (s *Store) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		return []domain.Notification{}, nil
	}

	items, err := s.client.LRange(ctx, userKey(userID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: List - user %d: %w", ErrRedis, userID, err)
	}

	return decodeAll(items)
}

func userKey(userID int64) string {
	return fmt.Sprintf("notifications:user:%d", userID)
}

func encode(n domain.Notification) ([]byte, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decodeAll(items []string) ([]domain.Notification, error) {
	notifications := make([]domain.Notification, 0, len(items))
	for _, item := range items {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// NopStore используется, когда Redis отключен: уведомления отбрасываются
type NopStore struct{}

// Push ничего не делает
func (NopStore) Push(context.Context, domain.Notification) error {
	return nil
}

// List всегда возвращает пустой список
func (NopStore) List(context.Context, int64, int) ([]domain.Notification, error) {
	return []domain.Notification{}, nil
}
