package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const minimalConfig = `
server:
  host: "127.0.0.1"
  port: 9090

database:
  host: "localhost"
  port: 5432
  user: "mowerworks"
  password: "pw"
  database: "mowerworks_test"
  ssl_mode: "disable"

email:
  provider: "smtp"
  from: "workshop@mowerworks.com.au"
  smtp_host: "localhost"
  smtp_port: 1025

jwt:
  secret: "test-secret-that-is-at-least-32-chars!!"
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_BackfillsDefaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, minimalConfig))
	assert.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
	assert.Equal(t, 0.10, cfg.Shop.GSTRate)
	assert.Equal(t, float64(95), cfg.Shop.DefaultLabourRate)
	assert.Equal(t, 14, cfg.Shop.OverduePickupDays)
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.MarkOverduePickups)
	assert.Equal(t, "0 0 7 * * 1", cfg.Scheduler.SendWeeklyRevenueReport)
}

func TestLoad_RejectsShortJWTSecret(t *testing.T) {
	content := `
server:
  port: 8080
database:
  host: "localhost"
  user: "u"
  database: "d"
email:
  provider: "smtp"
  from: "workshop@mowerworks.com.au"
  smtp_host: "localhost"
  smtp_port: 1025
jwt:
  secret: "short"
`
	_, err := Load(writeConfigFile(t, content))
	assert.Error(t, err)
}

func TestLoad_SendgridRequiresKey(t *testing.T) {
	content := `
server:
  port: 8080
database:
  host: "localhost"
  user: "u"
  database: "d"
email:
  provider: "sendgrid"
  from: "workshop@mowerworks.com.au"
jwt:
  secret: "test-secret-that-is-at-least-32-chars!!"
`
	_, err := Load(writeConfigFile(t, content))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load(writeConfigFile(t, minimalConfig))
	assert.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
}
