package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/EV-ChargingService/internal/usecase/check_availability"
)

const (
	msgInvalidPointID = "некорректный ID зарядной точки"
	msgInvalidQuery   = "некорректные параметры запроса, ожидается date=YYYY-MM-DD, start и end в формате HH:MM"
	msgInvalidWindow  = "некорректное окно бронирования"
	msgPointNotFound  = "зарядная точка не найдена"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/charging-points/{pointId}/availability
// Query params: date, start, end (required), excludeBookingId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pointID, err := handlers.ParseID(mux.Vars(r)["pointId"])
	if err != nil {
		h.logger.Warn("GET /charging-points/{id}/availability - Invalid point ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPointID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(pointID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /charging-points/{id}/availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrPointNotFound):
			h.logger.Warn("GET /charging-points/{id}/availability - Point not found: point_id=%d", pointID)
			handlers.RespondNotFound(w, msgPointNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /charging-points/{id}/availability - Invalid window: point_id=%d, error=%v", pointID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /charging-points/{id}/availability - Failed to check availability: point_id=%d, error=%v",
				pointID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("GET /charging-points/{id}/availability - point_id=%d, window=%s-%s, available=%t",
		pointID, useCaseReq.StartTime, useCaseReq.EndTime, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
