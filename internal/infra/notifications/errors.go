package notifications

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации уведомления
	ErrEncode = errors.New("notifications.store: failed to encode notification")

	// ErrDecode возвращается при ошибке десериализации уведомления
	ErrDecode = errors.New("notifications.store: failed to decode notification")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("notifications.store: redis error")
)
