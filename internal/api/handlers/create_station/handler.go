package create_station

import (
	"errors"
	"net/http"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/service/stations"
	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
)

const (
	msgInvalidRequest = "некорректный формат запроса"
	msgInvalidInput   = "название станции обязательно"
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

// Handle POST /api/v1/admin/stations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/stations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.service.CreateStation(r.Context(), &req)
	if err != nil {
		if errors.Is(err, stations.ErrInvalidInput) {
			h.logger.Warn("POST /admin/stations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/stations - Failed to create station: error=%v", err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("POST /admin/stations - Station created successfully: station_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
