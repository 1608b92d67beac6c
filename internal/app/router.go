package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/create_booking"
	createColumnHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/create_column"
	createPointHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/create_point"
	createStationHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/create_station"
	endSessionHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/end_session"
	expireBookingsHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/expire_bookings"
	getAvailableSlotsHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/get_bookings"
	getStationStatusHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/get_station_status"
	getUserBookingsHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/get_user_bookings"
	getUserNotificationsHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/get_user_notifications"
	getUserStatsHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/get_user_stats"
	listStationsHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/list_stations"
	setPointStatusHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/set_point_status"
	startSessionHandler "github.com/m04kA/EV-ChargingService/internal/api/handlers/start_session"
	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
)

// Router создает HTTP роутер со всеми маршрутами /api/v1
func (a *App) Router() http.Handler {
	log := a.Logger

	// Инициализируем handlers
	listStations := listStationsHandler.NewHandler(a.Stations, log)
	getStationStatus := getStationStatusHandler.NewHandler(a.Stations, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(a.CheckAvailability, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(a.GetAvailableSlots, log)

	createBooking := createBookingHandler.NewHandler(a.CreateBooking, log)
	getBooking := getBookingHandler.NewHandler(a.Bookings, log)
	cancelBooking := cancelBookingHandler.NewHandler(a.Bookings, log)
	startSession := startSessionHandler.NewHandler(a.StartSession, log)
	endSession := endSessionHandler.NewHandler(a.EndSession, log)
	getUserBookings := getUserBookingsHandler.NewHandler(a.Bookings, log)
	getUserStats := getUserStatsHandler.NewHandler(a.Stats, log)
	getUserNotifications := getUserNotificationsHandler.NewHandler(a.Notifications, log)

	getBookings := getBookingsHandler.NewHandler(a.Bookings, log)
	expireBookings := expireBookingsHandler.NewHandler(a.ExpireBookings, log)
	createStation := createStationHandler.NewHandler(a.Stations, log)
	createColumn := createColumnHandler.NewHandler(a.Stations, log)
	createPoint := createPointHandler.NewHandler(a.Stations, log)
	setPointStatus := setPointStatusHandler.NewHandler(a.Stations, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if a.Config.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(a.Metrics))
		r.Handle(a.Config.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", a.Config.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(a.Config.Database.QueryTimeoutDuration()))

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог станций
	api.HandleFunc("/stations", listStations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stations/{stationId}", getStationStatus.Handle).Methods(http.MethodGet)

	// Доступность зарядной точки
	api.HandleFunc("/charging-points/{pointId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/charging-points/{pointId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Зарядные сессии ---
	protected.HandleFunc("/bookings/{bookingId}/sessions", startSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/end", endSession.Handle).Methods(http.MethodPatch)

	// --- Пользователь ---
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/stats", getUserStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/notifications", getUserNotifications.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/expire", expireBookings.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/stations", createStation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/stations/{stationId}/columns", createColumn.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/columns/{columnId}/points", createPoint.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/charging-points/{pointId}/status", setPointStatus.Handle).Methods(http.MethodPatch)

	return r
}
