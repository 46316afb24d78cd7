package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: localhost
  user: propsetu
  password: secret
  dbname: estate
`)

	cfg, err := LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "PROPERTY_EVENTS", cfg.NATS.StreamName)
	assert.Equal(t, 120, cfg.Notification.RatePerMinute)
	assert.Equal(t, "500ms", cfg.Notification.BulkPacing.String())
	assert.Equal(t, "config/reserved_slugs.json", cfg.ReservedSlugsPath)
}

func TestLoadAPIConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
debug: true
server:
  port: 9090
database:
  host: db.internal
  read_host: db-ro.internal
  user: propsetu
  password: secret
  dbname: estate
auth:
  api_keys:
    - key-one
    - key-two
mailer:
  api_url: https://mail.example.com/v1
  api_key: mk
  from_address: noreply@propsetu.example
sms:
  api_url: https://sms.example.com/v2
  api_key: sk
  sender_id: PROPSETU
`)

	cfg, err := LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
	assert.Equal(t, "https://mail.example.com/v1", cfg.Mailer.APIURL)
	assert.Equal(t, "PROPSETU", cfg.SMS.SenderID)
}

func TestLoadAPIConfigEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: localhost
  user: propsetu
  password: secret
  dbname: estate
`)

	t.Setenv("PROPSETU_SERVER_PORT", "3000")
	t.Setenv("PROPSETU_DATABASE_HOST", "env-host")
	t.Setenv("PROPSETU_SMS_SENDER_ID", "ENVSENDER")

	cfg, err := LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, "ENVSENDER", cfg.SMS.SenderID)
}

func TestLoadAPIConfigMissingDatabase(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8080
`)

	_, err := LoadAPIConfig(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host is required")
}

func TestLoadSweeperConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: localhost
  user: propsetu
  password: secret
  dbname: estate
`)

	cfg, err := LoadSweeperConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2, cfg.Database.MaxIdleConns)
	assert.Equal(t, "72h0m0s", cfg.StalePending.OlderThan.String())
	assert.Equal(t, "1h0m0s", cfg.StalePending.Interval.String())
	assert.Equal(t, 100, cfg.StalePending.BatchSize)
	assert.Equal(t, 10, cfg.StalePending.Worker.PoolSize)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		ReadHost: "db-ro.internal",
		User:     "propsetu",
		Password: "secret",
		DBName:   "estate",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=propsetu password=secret dbname=estate sslmode=require",
		cfg.DSN())

	// read replica falls back to the primary port when unset
	assert.Equal(t,
		"host=db-ro.internal port=5433 user=propsetu password=secret dbname=estate sslmode=require",
		cfg.ReadDSN())

	cfg.ReadPort = 5434
	assert.Contains(t, cfg.ReadDSN(), "port=5434")
}
