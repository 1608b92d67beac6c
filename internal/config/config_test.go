package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/pkg/types"
)

const sampleTOML = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "evcs"
password = "secret"
dbname = "evcs"

[logs]
level = "debug"

[metrics]
enabled = true

[redis]
enabled = true
addr = "redis:6379"

[booking]
price_per_kwh = 0.40
grace_minutes = 15
operating_start = "07:00"
operating_end = "21:00"
timezone = "Europe/Rome"

[sweeper]
enabled = true
interval_seconds = 30
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.toml", sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db port=5433 user=evcs password=secret dbname=evcs sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeoutDuration())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.NotificationTTLDuration())
	assert.Equal(t, 30*time.Second, cfg.Sweeper.Interval())

	settings, err := cfg.Booking.Settings()
	require.NoError(t, err)
	assert.Equal(t, 0.40, settings.PricePerKwh)
	assert.Equal(t, 15, settings.GraceMinutes)
	assert.Equal(t, 30, settings.SlotIntervalMinutes)
	assert.Equal(t, 60, settings.DefaultDurationMinutes)
	assert.Equal(t, types.TimeRange{Start: "07:00", End: "21:00"}, settings.OperatingHours)
	assert.Equal(t, "Europe/Rome", settings.Location.String())
}

func TestLoad_YAML(t *testing.T) {
	content := `
database:
  host: db
  dbname: evcs
  driver: pgx
booking:
  slot_interval_minutes: 15
`
	cfg, err := Load(writeFile(t, "config.yaml", content))
	require.NoError(t, err)

	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, 15, cfg.Booking.SlotIntervalMinutes)
	assert.Equal(t, "06:00", cfg.Booking.OperatingStart)
	assert.Equal(t, "22:00", cfg.Booking.OperatingEnd)
	assert.Equal(t, 0.35, cfg.Booking.PricePerKwh)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EVCS_DATABASE__HOST", "override-host")
	t.Setenv("EVCS_SERVER__HTTP_PORT", "7070")
	t.Setenv("EVCS_BOOKING__GRACE_MINUTES", "5")

	cfg, err := Load(writeFile(t, "config.toml", sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, "override-host", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Booking.GraceMinutes)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "config.ini", "x=1"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "config.toml", "[database]\nhost = \"db\"\n"))
	assert.ErrorContains(t, err, "dbname")

	_, err = Load(writeFile(t, "config.toml", "[database]\nhost = \"db\"\ndbname = \"x\"\ndriver = \"mysql\"\n"))
	assert.ErrorContains(t, err, "driver")

	_, err = Load(writeFile(t, "config.toml", "[database]\nhost = \"db\"\ndbname = \"x\"\n[booking]\noperating_start = \"23:00\"\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "config.toml", "[database]\nhost = \"db\"\ndbname = \"x\"\n[booking]\ntimezone = \"Mars/Olympus\"\n"))
	assert.ErrorContains(t, err, "timezone")
}

func TestTOMLParser_RoundTrip(t *testing.T) {
	p := TOMLParser()
	m, err := p.Unmarshal([]byte("[a]\nb = 1\n"))
	require.NoError(t, err)

	out, err := p.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), "b = 1")
}
