package set_point_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/service/stations"
	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

const (
	msgInvalidPointID = "некорректный ID зарядной точки"
	msgInvalidRequest = "некорректный формат запроса"
	msgInvalidStatus  = "статус должен быть maintenance или available"
	msgPointNotFound  = "зарядная точка не найдена"
	msgPointBusy      = "зарядная точка занята или уже в запрошенном статусе"
)

type Handler struct {
	service StationService
	logger  Logger
}

func NewHandler(service StationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/charging-points/{pointId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pointID, err := handlers.ParseID(mux.Vars(r)["pointId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/charging-points/{id}/status - Invalid point ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPointID)
		return
	}

	var req models.SetPointStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/charging-points/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.service.SetPointStatus(r.Context(), pointID, &req)
	if err != nil {
		switch {
		case errors.Is(err, stations.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/charging-points/{id}/status - Invalid status: point_id=%d, status=%q", pointID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, stations.ErrPointNotFound):
			h.logger.Warn("PATCH /admin/charging-points/{id}/status - Point not found: point_id=%d", pointID)
			handlers.RespondNotFound(w, msgPointNotFound)

		case errors.Is(err, stations.ErrPointBusy):
			h.logger.Warn("PATCH /admin/charging-points/{id}/status - Point busy: point_id=%d, target=%s", pointID, req.Status)
			handlers.RespondConflict(w, msgPointBusy)

		default:
			h.logger.Error("PATCH /admin/charging-points/{id}/status - Failed to set status: point_id=%d, error=%v",
				pointID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("PATCH /admin/charging-points/{id}/status - Point status updated: point_id=%d, status=%s",
		pointID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
