package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// БД
	dbQueryDuration  *prometheus.HistogramVec
	dbConnections    *prometheus.GaugeVec
	dbWaitCountTotal *prometheus.GaugeVec

	// Бизнес-метрики
	bookingsCreated    *prometheus.CounterVec
	bookingTransitions *prometheus.CounterVec
	sessionsCompleted  *prometheus.CounterVec
	energyDelivered    *prometheus.CounterVec
	bookingsExpired    *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registerer.
// Если коллекторы уже зарегистрированы, переиспользуются существующие.
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{serviceName: serviceName}

	m.httpRequestsTotal = registerCounterVec(reg, prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"service", "method", "path", "status"})

	m.httpRequestDuration = registerHistogramVec(reg, prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "method", "path"})

	m.dbQueryDuration = registerHistogramVec(reg, prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Database query latency",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"service", "operation", "status"})

	m.dbConnections = registerGaugeVec(reg, prometheus.GaugeOpts{
		Name: "db_connections",
		Help: "Database connection pool state",
	}, []string{"service", "state"})

	m.dbWaitCountTotal = registerGaugeVec(reg, prometheus.GaugeOpts{
		Name: "db_connections_wait_count",
		Help: "Total number of connections waited for",
	}, []string{"service"})

	m.bookingsCreated = registerCounterVec(reg, prometheus.CounterOpts{
		Name: "bookings_created_total",
		Help: "Total number of created bookings",
	}, []string{"service"})

	m.bookingTransitions = registerCounterVec(reg, prometheus.CounterOpts{
		Name: "booking_status_transitions_total",
		Help: "Booking status transitions",
	}, []string{"service", "from", "to"})

	m.sessionsCompleted = registerCounterVec(reg, prometheus.CounterOpts{
		Name: "charging_sessions_completed_total",
		Help: "Total number of completed charging sessions",
	}, []string{"service"})

	m.energyDelivered = registerCounterVec(reg, prometheus.CounterOpts{
		Name: "charging_energy_delivered_kwh_total",
		Help: "Total energy delivered in completed sessions, kWh",
	}, []string{"service"})

	m.bookingsExpired = registerCounterVec(reg, prometheus.CounterOpts{
		Name: "bookings_expired_total",
		Help: "Total number of bookings marked as no_show by the expiration sweep",
	}, []string{"service"})

	return m
}

// RecordHTTPRequest фиксирует HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordDBQuery фиксирует длительность SQL запроса
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation, status).Observe(duration.Seconds())
}

// RecordDBStats фиксирует состояние пула соединений
func (m *Metrics) RecordDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(stats.Idle))
	m.dbWaitCountTotal.WithLabelValues(m.serviceName).Set(float64(stats.WaitCount))
}

// BookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(m.serviceName).Inc()
}

// BookingTransition фиксирует переход статуса бронирования
func (m *Metrics) BookingTransition(from, to string) {
	if m == nil {
		return
	}
	m.bookingTransitions.WithLabelValues(m.serviceName, from, to).Inc()
}

// SessionCompleted фиксирует завершенную сессию зарядки и отпущенную энергию
func (m *Metrics) SessionCompleted(energyKwh float64) {
	if m == nil {
		return
	}
	m.sessionsCompleted.WithLabelValues(m.serviceName).Inc()
	m.energyDelivered.WithLabelValues(m.serviceName).Add(energyKwh)
}

// BookingsExpired увеличивает счетчик просроченных бронирований
func (m *Metrics) BookingsExpired(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.bookingsExpired.WithLabelValues(m.serviceName).Add(float64(count))
}

func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerHistogramVec(reg prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return h
}

func registerGaugeVec(reg prometheus.Registerer, opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	g := prometheus.NewGaugeVec(opts, labels)
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.GaugeVec)
		}
		panic(err)
	}
	return g
}
