package get_user_notifications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	"github.com/m04kA/EV-ChargingService/internal/service/notifications"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidLimit  = "некорректный limit"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/notifications
// Query params: limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseID(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("GET /users/{userId}/notifications - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if !middleware.CanAccessUser(r.Context(), userID) {
		h.logger.Warn("GET /users/{userId}/notifications - Access denied: user_id=%d", userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil {
			h.logger.Warn("GET /users/{userId}/notifications - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	result, err := h.service.List(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, notifications.ErrInvalidInput) {
			h.logger.Warn("GET /users/{userId}/notifications - Invalid limit: %d", limit)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		h.logger.Error("GET /users/{userId}/notifications - Failed to list notifications: user_id=%d, error=%v",
			userID, err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("GET /users/{userId}/notifications - Notifications retrieved: user_id=%d, count=%d",
		userID, len(result.Notifications))
	handlers.RespondJSON(w, http.StatusOK, result.Notifications)
}
