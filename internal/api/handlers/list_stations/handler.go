package list_stations

import (
	"net/http"
	"strconv"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
)

const msgInvalidOnlyAvailable = "некорректное значение onlyAvailable, ожидается true или false"

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

// Handle GET /api/v1/stations
// Query params: onlyAvailable (опционально, по умолчанию false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := false
	if s := r.URL.Query().Get("onlyAvailable"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			h.logger.Warn("GET /stations - Invalid onlyAvailable: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOnlyAvailable)
			return
		}
		onlyAvailable = v
	}

	result, err := h.service.List(r.Context(), onlyAvailable)
	if err != nil {
		h.logger.Error("GET /stations - Failed to list stations: error=%v", err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("GET /stations - Stations retrieved successfully: only_available=%t, count=%d",
		onlyAvailable, len(result.Stations))
	handlers.RespondJSON(w, http.StatusOK, result.Stations)
}
