package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// Clock фиксированное время для тестов
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

// NewClock создает часы, показывающие t
func NewClock(t time.Time) *Clock {
	return &Clock{t: t}
}

// Now возвращает текущее фейковое время
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Set переводит часы
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// SentNotification уведомление, переданное в Notifier
type SentNotification struct {
	UserID  int64
	Type    domain.NotificationType
	Message string
}

// Notifier запоминает отправленные уведомления
type Notifier struct {
	mu   sync.Mutex
	sent []SentNotification

	// Err возвращается из Notify, если задан
	Err error
}

// Notify запоминает уведомление
func (n *Notifier) Notify(_ context.Context, userID int64, typ domain.NotificationType, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.Err != nil {
		return n.Err
	}
	n.sent = append(n.sent, SentNotification{UserID: userID, Type: typ, Message: message})
	return nil
}

// Sent возвращает копию отправленных уведомлений
func (n *Notifier) Sent() []SentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]SentNotification(nil), n.sent...)
}
