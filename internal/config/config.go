package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// EnvPrefix префикс переменных окружения, EVCS_DATABASE__HOST -> database.host
const EnvPrefix = "EVCS_"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
	Sweeper  SweeperConfig  `toml:"sweeper"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres (lib/pq) или pgx
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	QueryTimeout    int    `toml:"query_timeout"`     // секунды, дедлайн запроса и прогона sweeper
}

// DSN строка подключения в формате key=value, понимают и lib/pq, и pgx
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// QueryTimeoutDuration таймаут запроса
func (c DatabaseConfig) QueryTimeoutDuration() time.Duration {
	return time.Duration(c.QueryTimeout) * time.Second
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки очереди уведомлений
type RedisConfig struct {
	Enabled          bool   `toml:"enabled"`
	Addr             string `toml:"addr"`
	Password         string `toml:"password"`
	DB               int    `toml:"db"`
	NotificationTTL  int    `toml:"notification_ttl"` // часы
	MaxNotifications int    `toml:"max_notifications"`
}

// NotificationTTLDuration время жизни списка уведомлений пользователя
func (c RedisConfig) NotificationTTLDuration() time.Duration {
	return time.Duration(c.NotificationTTL) * time.Hour
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	PricePerKwh            float64 `toml:"price_per_kwh"`
	GraceMinutes           int     `toml:"grace_minutes"`
	SlotIntervalMinutes    int     `toml:"slot_interval_minutes"`
	DefaultDurationMinutes int     `toml:"default_duration_minutes"`
	OperatingStart         string  `toml:"operating_start"`
	OperatingEnd           string  `toml:"operating_end"`
	Timezone               string  `toml:"timezone"`
}

// Settings конвертирует секцию в domain.BookingSettings
func (c BookingConfig) Settings() (domain.BookingSettings, error) {
	start, err := types.NewTimeStringFromString(c.OperatingStart)
	if err != nil {
		return domain.BookingSettings{}, fmt.Errorf("booking.operating_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(c.OperatingEnd)
	if err != nil {
		return domain.BookingSettings{}, fmt.Errorf("booking.operating_end: %w", err)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return domain.BookingSettings{}, fmt.Errorf("booking.timezone: %w", err)
	}

	settings := domain.BookingSettings{
		PricePerKwh:            c.PricePerKwh,
		GraceMinutes:           c.GraceMinutes,
		SlotIntervalMinutes:    c.SlotIntervalMinutes,
		DefaultDurationMinutes: c.DefaultDurationMinutes,
		OperatingHours:         types.TimeRange{Start: start, End: end},
		Location:               loc,
	}
	if err := settings.Validate(); err != nil {
		return domain.BookingSettings{}, fmt.Errorf("booking: %w", err)
	}
	return settings, nil
}

// SweeperConfig настройки фоновой отметки просроченных бронирований
type SweeperConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`
}

// Interval период запуска
func (c SweeperConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Load загружает конфигурацию из файла (.toml, .yaml, .yml) и
// применяет переопределения из переменных окружения EVCS_*
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = TOMLParser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "toml"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetDefaults заполняет незаданные значения
func (c *Config) SetDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Database.QueryTimeout == 0 {
		c.Database.QueryTimeout = 5
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "ev-charging-service"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.NotificationTTL == 0 {
		c.Redis.NotificationTTL = 24 * 7
	}
	if c.Redis.MaxNotifications == 0 {
		c.Redis.MaxNotifications = 50
	}

	if c.Booking.PricePerKwh == 0 {
		c.Booking.PricePerKwh = domain.DefaultPricePerKwh
	}
	if c.Booking.GraceMinutes == 0 {
		c.Booking.GraceMinutes = domain.DefaultGraceMinutes
	}
	if c.Booking.SlotIntervalMinutes == 0 {
		c.Booking.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if c.Booking.DefaultDurationMinutes == 0 {
		c.Booking.DefaultDurationMinutes = domain.DefaultBookingDurationMinutes
	}
	if c.Booking.OperatingStart == "" {
		c.Booking.OperatingStart = domain.DefaultOperatingStart.String()
	}
	if c.Booking.OperatingEnd == "" {
		c.Booking.OperatingEnd = domain.DefaultOperatingEnd.String()
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "UTC"
	}

	if c.Sweeper.IntervalSeconds == 0 {
		c.Sweeper.IntervalSeconds = 60
	}
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port is out of range: %d", c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case "postgres", "pgx":
	default:
		return fmt.Errorf("database.driver must be postgres or pgx, got %q", c.Database.Driver)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}

	if c.Redis.Enabled && c.Redis.MaxNotifications < 0 {
		return fmt.Errorf("redis.max_notifications must be positive")
	}

	if c.Sweeper.IntervalSeconds < 0 {
		return fmt.Errorf("sweeper.interval_seconds must be positive")
	}

	if _, err := c.Booking.Settings(); err != nil {
		return err
	}

	return nil
}
