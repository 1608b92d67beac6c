package end_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	endSession "github.com/m04kA/EV-ChargingService/internal/usecase/end_session"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidRequest   = "некорректный формат запроса, ожидается energyConsumed"
	msgInvalidEnergy    = "некорректное значение потребленной энергии"
	msgNotFound         = "зарядная сессия не найдена"
	msgNotInProgress    = "зарядная сессия уже завершена"
)

type Handler struct {
	useCase EndSessionUseCase
	logger  Logger
}

func NewHandler(useCase EndSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/end
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	logID, err := handlers.ParseID(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/end - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /sessions/{id}/end - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req EndSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.EnergyConsumed == nil {
		h.logger.Warn("PATCH /sessions/{id}/end - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &endSession.Request{
		LogID:          logID,
		UserID:         userID,
		IsAdmin:        middleware.IsAdmin(r.Context()),
		EnergyConsumed: *req.EnergyConsumed,
	})
	if err != nil {
		switch {
		case errors.Is(err, endSession.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/end - Invalid input: log_id=%d, error=%v", logID, err)
			handlers.RespondBadRequest(w, msgInvalidEnergy)

		case errors.Is(err, endSession.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/end - Session not found: log_id=%d, user_id=%d", logID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, endSession.ErrSessionNotInProgress):
			h.logger.Warn("PATCH /sessions/{id}/end - Session not in progress: log_id=%d", logID)
			handlers.RespondConflict(w, msgNotInProgress)

		default:
			h.logger.Error("PATCH /sessions/{id}/end - Failed to end session: log_id=%d, error=%v", logID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/end - Session completed: log_id=%d, energy=%.3f, cost=%.4f",
		logID, result.EnergyConsumed, result.Cost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
