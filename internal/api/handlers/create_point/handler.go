package create_point

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/service/stations"
	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

const (
	msgInvalidColumnID = "некорректный ID колонки"
	msgInvalidRequest  = "некорректный формат запроса"
	msgInvalidInput    = "номер точки должен быть положительным"
	msgColumnNotFound  = "колонка не найдена"
	msgAlreadyExists   = "точка с таким номером уже существует"
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

// Handle POST /api/v1/admin/columns/{columnId}/points
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	columnID, err := handlers.ParseID(mux.Vars(r)["columnId"])
	if err != nil {
		h.logger.Warn("POST /admin/columns/{id}/points - Invalid column ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColumnID)
		return
	}

	var req models.CreatePointRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/columns/{id}/points - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	req.ColumnID = columnID

	result, err := h.service.CreatePoint(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, stations.ErrColumnNotFound):
			h.logger.Warn("POST /admin/columns/{id}/points - Column not found: column_id=%d", columnID)
			handlers.RespondNotFound(w, msgColumnNotFound)

		case errors.Is(err, stations.ErrAlreadyExists):
			h.logger.Warn("POST /admin/columns/{id}/points - Point number taken: column_id=%d, number=%d",
				columnID, req.PointNumber)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, stations.ErrInvalidInput):
			h.logger.Warn("POST /admin/columns/{id}/points - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/columns/{id}/points - Failed to create point: column_id=%d, error=%v",
				columnID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /admin/columns/{id}/points - Point created successfully: column_id=%d, point_id=%d",
		columnID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
