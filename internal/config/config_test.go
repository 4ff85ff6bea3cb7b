package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: development
  log_level: debug
  port: "9090"
  base_url: localhost:9090
  allowed_cors_domains:
    - http://localhost:3000
  jwt_signing_key: a-very-long-test-signing-key
gin:
  mode: test
postgres:
  host: localhost
  port: "5432"
  user: rental
  password: secret
  db: rental
redis:
  addr: localhost:6379
  ttl: 30s
credits:
  default_balance: 5000
metrics:
  enabled: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, 5000, conf.Credits.DefaultBalance)
	assert.Equal(t, 30*time.Second, conf.Redis.TTL)
	assert.Equal(t, "instruments-rental", conf.Redis.Prefix)
	assert.True(t, conf.Metrics.Enabled)
	assert.Equal(t, "host=localhost port=5432 user=rental password=secret dbname=rental sslmode=disable", conf.Postgres.DSN())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("APP_API_PORT", "7070")
	t.Setenv("APP_CREDITS_DEFAULT_BALANCE", "100")

	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "7070", conf.API.Port)
	assert.Equal(t, 100, conf.Credits.DefaultBalance)
}

func TestLoadRejectsShortSigningKey(t *testing.T) {
	_, err := Load(writeConfig(t, `
api:
  port: "8080"
  jwt_signing_key: short
gin:
  mode: release
credits:
  default_balance: 5000
`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
