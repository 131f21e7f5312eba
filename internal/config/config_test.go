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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "booking"
password = "booking"
dbname = "booking"

[webhooks]
token = "super-secret"
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "super-secret", cfg.Webhooks.Token)
	assert.Equal(t, "disable", cfg.Database.SSLMode) // defaulted
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_MissingPort(t *testing.T) {
	content := `
[database]
host = "localhost"
dbname = "booking"

[webhooks]
token = "super-secret"
`
	_, err := Load(writeConfigFile(t, content))

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingWebhookToken(t *testing.T) {
	// The bot routes are always registered; startup must refuse a config
	// that would leave them without a shared secret.
	content := `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "booking"
`
	_, err := Load(writeConfigFile(t, content))

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "webhooks.token")
}

func TestLoad_MetricsPathDefaulted(t *testing.T) {
	content := validConfig + `
[metrics]
enabled = true
`
	cfg, err := Load(writeConfigFile(t, content))

	require.NoError(t, err)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestDatabase_DSN(t *testing.T) {
	d := Database{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "booking", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=booking sslmode=disable", d.DSN())
}
