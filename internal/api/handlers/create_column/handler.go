package create_column

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/service/stations"
	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

const (
	msgInvalidStationID = "некорректный ID станции"
	msgInvalidRequest   = "некорректный формат запроса"
	msgInvalidInput     = "некорректные параметры колонки"
	msgStationNotFound  = "станция не найдена"
	msgAlreadyExists    = "колонка с таким номером уже существует"
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

// Handle POST /api/v1/admin/stations/{stationId}/columns
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stationID, err := handlers.ParseID(mux.Vars(r)["stationId"])
	if err != nil {
		h.logger.Warn("POST /admin/stations/{id}/columns - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	var req models.CreateColumnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/stations/{id}/columns - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	req.StationID = stationID

	result, err := h.service.CreateColumn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, stations.ErrStationNotFound):
			h.logger.Warn("POST /admin/stations/{id}/columns - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, stations.ErrAlreadyExists):
			h.logger.Warn("POST /admin/stations/{id}/columns - Column number taken: station_id=%d, number=%d",
				stationID, req.ColumnNumber)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, stations.ErrInvalidInput):
			h.logger.Warn("POST /admin/stations/{id}/columns - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/stations/{id}/columns - Failed to create column: station_id=%d, error=%v",
				stationID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /admin/stations/{id}/columns - Column created successfully: station_id=%d, column_id=%d",
		stationID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
