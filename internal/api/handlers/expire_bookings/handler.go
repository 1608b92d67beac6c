package expire_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	expireBookings "github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
)

const (
	msgInvalidRequest = "некорректный формат запроса"
	msgInvalidInput   = "некорректное значение graceMinutes"
)

type Handler struct {
	useCase ExpireBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ExpireBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/expire
// Тело опционально: {"now": RFC3339, "graceMinutes": int}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExpireRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/expire - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, expireBookings.ErrInvalidInput) {
			h.logger.Warn("POST /admin/bookings/expire - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/bookings/expire - Failed to expire bookings: error=%v", err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("POST /admin/bookings/expire - Expired %d bookings, cutoff=%s",
		len(result.ExpiredIDs), result.Cutoff.Format("2006-01-02 15:04"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
