package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "database:\n  host: db\n  port: 5432\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, "AUD", cfg.Booking.Currency)
	assert.Equal(t, "FLYDA", cfg.Booking.PNRPrefix)
	assert.Equal(t, "/confirm", cfg.Booking.ConfirmPath)
	assert.Equal(t, 300, cfg.Booking.ConfirmationCacheTTL)
	assert.Equal(t, 5, cfg.Booking.PublishTimeout)
	assert.Equal(t, "UTC", cfg.Booking.DisplayTimezone)
	assert.Equal(t, "session_token", cfg.Auth.SessionCookie)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "host=db port=5432 user= password= dbname= sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
kafka:
  brokers: ["k1:9092", "k2:9092"]
  booking_topic: bookings
booking:
  currency: USD
  pnr_prefix: TEST
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "bookings", cfg.Kafka.BookingTopic)
	assert.Equal(t, "USD", cfg.Booking.Currency)
	assert.Equal(t, "TEST", cfg.Booking.PNRPrefix)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	path := writeConfig(t, "http: [unclosed")
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "config.yaml", Path())

	t.Setenv("CONFIG_PATH", "/etc/flydreamair.yaml")
	assert.Equal(t, "/etc/flydreamair.yaml", Path())
}
