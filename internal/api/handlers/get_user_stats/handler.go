package get_user_stats

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseID(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("GET /users/{userId}/stats - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if !middleware.CanAccessUser(r.Context(), userID) {
		h.logger.Warn("GET /users/{userId}/stats - Access denied: user_id=%d", userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetUserStats(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/stats - Failed to get stats: user_id=%d, error=%v", userID, err)
		handlers.RespondDomainError(w, err, msgInvalidUserID)
		return
	}

	h.logger.Info("GET /users/{userId}/stats - Stats retrieved successfully: user_id=%d, sessions=%d",
		userID, result.Total.Sessions)
	handlers.RespondJSON(w, http.StatusOK, result)
}
