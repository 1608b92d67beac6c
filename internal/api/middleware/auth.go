package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
)

const (
	// UserIDHeader заголовок с ID пользователя, выставляется шлюзом
	UserIDHeader = "X-User-ID"
	// UserRoleHeader заголовок с ролью пользователя
	UserRoleHeader = "X-User-Role"

	// RoleAdmin роль администратора
	RoleAdmin = "admin"

	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidUserID = "некорректный ID пользователя"
	msgAdminOnly     = "операция доступна только администратору"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
	requestIDKey
)

// Auth извлекает пользователя из заголовков X-User-ID и X-User-Role
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, r.Header.Get(UserRoleHeader))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только администраторов, ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsAdmin true, если запрос выполняет администратор
func IsAdmin(ctx context.Context) bool {
	role, _ := ctx.Value(roleKey).(string)
	return role == RoleAdmin
}

// WithUser кладет пользователя в контекст (для тестов обработчиков)
func WithUser(ctx context.Context, userID int64, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// CanAccessUser true, если вызывающий - сам пользователь userID или администратор
func CanAccessUser(ctx context.Context, userID int64) bool {
	if IsAdmin(ctx) {
		return true
	}
	caller, ok := GetUserID(ctx)
	return ok && caller == userID
}
