package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/EV-ChargingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidPointID = "некорректный ID зарядной точки"
	msgMissingDate    = "дата обязательна"
	msgInvalidQuery   = "некорректные параметры запроса, ожидается date=YYYY-MM-DD, duration и interval в минутах"
	msgPointNotFound  = "зарядная точка не найдена"
	msgInvalidInput   = "некорректная длительность или шаг окна"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/charging-points/{pointId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration, interval (минуты, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pointID, err := handlers.ParseID(mux.Vars(r)["pointId"])
	if err != nil {
		h.logger.Warn("GET /charging-points/{id}/available-slots - Invalid point ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPointID)
		return
	}

	if r.URL.Query().Get("date") == "" {
		h.logger.Warn("GET /charging-points/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(pointID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /charging-points/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPointNotFound):
			h.logger.Warn("GET /charging-points/{id}/available-slots - Point not found: point_id=%d", pointID)
			handlers.RespondNotFound(w, msgPointNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /charging-points/{id}/available-slots - Invalid input: point_id=%d, error=%v", pointID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /charging-points/{id}/available-slots - Failed to get slots: point_id=%d, error=%v",
				pointID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("GET /charging-points/{id}/available-slots - Slots retrieved successfully: point_id=%d, slots_count=%d",
		pointID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
