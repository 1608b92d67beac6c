package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	createBooking "github.com/m04kA/EV-ChargingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidDate         = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgSlotNotAvailable    = "выбранный временной интервал уже занят"
	msgPointNotFound       = "зарядная точка не найдена"
	msgPointMaintenance    = "зарядная точка на обслуживании"
	msgInvalidBookingDate  = "дата бронирования в прошлом"
	msgTooLateToBook       = "время начала уже прошло"
	msgOutsideHours        = "интервал выходит за часы работы станции"
	msgInvalidTimeInterval = "некорректный временной интервал"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errParseTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, point_id=%d", userID, req.ChargingPointID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrPointNotFound):
			h.logger.Warn("POST /bookings - Point not found: point_id=%d", req.ChargingPointID)
			handlers.RespondNotFound(w, msgPointNotFound)

		case errors.Is(err, createBooking.ErrPointUnderMaintenance):
			h.logger.Warn("POST /bookings - Point under maintenance: point_id=%d", req.ChargingPointID)
			handlers.RespondConflict(w, msgPointMaintenance)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTimeInterval)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, point_id=%d, error=%v",
				userID, req.ChargingPointID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, point_id=%d",
		result.ID, userID, req.ChargingPointID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
