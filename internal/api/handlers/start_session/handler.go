package start_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	startSession "github.com/m04kA/EV-ChargingService/internal/usecase/start_session"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgInvalidStatus    = "зарядку можно начать только по запланированному бронированию"
	msgMaintenance      = "зарядная точка на обслуживании"
)

type Handler struct {
	useCase StartSessionUseCase
	logger  Logger
}

func NewHandler(useCase StartSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.ParseID(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/sessions - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &startSession.Request{
		BookingID: bookingID,
		UserID:    userID,
		IsAdmin:   middleware.IsAdmin(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, startSession.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/sessions - Booking not found: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, startSession.ErrInvalidStatus):
			h.logger.Warn("POST /bookings/{id}/sessions - Booking is not scheduled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgInvalidStatus)

		case errors.Is(err, startSession.ErrPointUnderMaintenance):
			h.logger.Warn("POST /bookings/{id}/sessions - Point under maintenance: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgMaintenance)

		default:
			h.logger.Error("POST /bookings/{id}/sessions - Failed to start session: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/sessions - Session started: booking_id=%d, log_id=%d", bookingID, result.LogID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
