package get_station_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/service/stations"
)

const (
	msgInvalidStationID = "некорректный ID станции"
	msgStationNotFound  = "станция не найдена"
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

// Handle GET /api/v1/stations/{stationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stationID, err := handlers.ParseID(mux.Vars(r)["stationId"])
	if err != nil {
		h.logger.Warn("GET /stations/{id} - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	result, err := h.service.GetStatus(r.Context(), stationID)
	if err != nil {
		if errors.Is(err, stations.ErrStationNotFound) {
			h.logger.Warn("GET /stations/{id} - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)
			return
		}
		h.logger.Error("GET /stations/{id} - Failed to get station status: station_id=%d, error=%v", stationID, err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("GET /stations/{id} - Station status retrieved successfully: station_id=%d, points=%d",
		stationID, len(result.Points))
	handlers.RespondJSON(w, http.StatusOK, result)
}
