// Package app собирает зависимости сервиса из конфигурации.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/EV-ChargingService/internal/config"
	"github.com/m04kA/EV-ChargingService/internal/domain"
	notificationStore "github.com/m04kA/EV-ChargingService/internal/infra/notifications"
	bookingRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/booking"
	chargingLogRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/charging_log"
	stationRepo "github.com/m04kA/EV-ChargingService/internal/infra/storage/station"
	bookingsService "github.com/m04kA/EV-ChargingService/internal/service/bookings"
	notificationsService "github.com/m04kA/EV-ChargingService/internal/service/notifications"
	stationsService "github.com/m04kA/EV-ChargingService/internal/service/stations"
	statsService "github.com/m04kA/EV-ChargingService/internal/service/stats"
	checkAvailabilityUC "github.com/m04kA/EV-ChargingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/EV-ChargingService/internal/usecase/create_booking"
	endSessionUC "github.com/m04kA/EV-ChargingService/internal/usecase/end_session"
	expireBookingsUC "github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
	getAvailableSlotsUC "github.com/m04kA/EV-ChargingService/internal/usecase/get_available_slots"
	startSessionUC "github.com/m04kA/EV-ChargingService/internal/usecase/start_session"
	"github.com/m04kA/EV-ChargingService/internal/worker/expiration"
	"github.com/m04kA/EV-ChargingService/pkg/dbmetrics"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
	"github.com/m04kA/EV-ChargingService/pkg/metrics"
	"github.com/m04kA/EV-ChargingService/pkg/redisclient"
	"github.com/m04kA/EV-ChargingService/pkg/txmanager"
)

// NotificationStore хранилище уведомлений (Redis или заглушка)
type NotificationStore interface {
	Push(ctx context.Context, n domain.Notification) error
	List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
}

// App контейнер зависимостей сервиса
type App struct {
	Config   *config.Config
	Logger   *logger.Logger
	Metrics  *metrics.Metrics
	Settings domain.BookingSettings

	db            *sql.DB
	redis         *redis.Client
	stopMetricsCh chan struct{}

	Bookings      *bookingsService.Service
	Stations      *stationsService.Service
	Stats         *statsService.Service
	Notifications *notificationsService.Service

	CheckAvailability *checkAvailabilityUC.UseCase
	GetAvailableSlots *getAvailableSlotsUC.UseCase
	CreateBooking     *createBookingUC.UseCase
	StartSession      *startSessionUC.UseCase
	EndSession        *endSessionUC.UseCase
	ExpireBookings    *expireBookingsUC.UseCase
}

// New подключается к PostgreSQL и Redis и создает сервисы и use cases
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	settings, err := cfg.Booking.Settings()
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:        cfg,
		Logger:        log,
		Settings:      settings,
		stopMetricsCh: make(chan struct{}),
	}

	// Инициализируем метрики (если включены)
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	a.db, err = sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	a.db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	a.db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	a.db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.QueryTimeoutDuration())
	defer cancel()
	if err := a.db.PingContext(pingCtx); err != nil {
		_ = a.db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
		cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// С nil метриками обертка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(a.db, a.Metrics, a.stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	bookings := bookingRepo.NewRepository(wrappedDB)
	stations := stationRepo.NewRepository(wrappedDB)
	logs := chargingLogRepo.NewRepository(wrappedDB)

	// Очередь уведомлений
	var store NotificationStore = notificationStore.NopStore{}
	if cfg.Redis.Enabled {
		a.redis, err = redisclient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = notificationStore.NewStore(a.redis, cfg.Redis.NotificationTTLDuration(), cfg.Redis.MaxNotifications)
		log.Info("Redis notifications enabled (addr=%s, ttl=%s, max=%d)",
			cfg.Redis.Addr, cfg.Redis.NotificationTTLDuration(), cfg.Redis.MaxNotifications)
	} else {
		log.Warn("Redis disabled, notifications are discarded")
	}

	// Инициализируем сервисы
	a.Notifications = notificationsService.NewService(store, log)
	a.Bookings = bookingsService.NewService(bookings, stations, logs, a.Notifications, a.Metrics, txMgr, log)
	a.Stations = stationsService.NewService(stations, log)
	a.Stats = statsService.NewService(logs, settings, log)

	// Инициализируем use cases
	a.CheckAvailability = checkAvailabilityUC.NewUseCase(bookings, stations, log)
	a.GetAvailableSlots = getAvailableSlotsUC.NewUseCase(bookings, stations, settings, log)
	a.CreateBooking = createBookingUC.NewUseCase(bookings, stations, a.Notifications, a.Metrics, txMgr, settings, log)
	a.StartSession = startSessionUC.NewUseCase(bookings, stations, logs, a.Metrics, txMgr, log)
	a.EndSession = endSessionUC.NewUseCase(bookings, stations, logs, a.Notifications, a.Metrics, txMgr, settings, log)
	a.ExpireBookings = expireBookingsUC.NewUseCase(bookings, stations, a.Metrics, txMgr, settings, log)

	return a, nil
}

// ExpirationWorker создает sweeper по настройкам секции sweeper
func (a *App) ExpirationWorker() *expiration.Worker {
	return expiration.NewWorker(
		a.ExpireBookings,
		a.Config.Sweeper.Interval(),
		a.Config.Database.QueryTimeoutDuration(),
		a.Logger,
	)
}

// Close останавливает сбор метрик и закрывает соединения
func (a *App) Close() {
	close(a.stopMetricsCh)

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.Logger.Error("Failed to close redis client: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.Logger.Error("Failed to close database: %v", err)
		}
	}
}
