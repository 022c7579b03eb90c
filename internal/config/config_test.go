package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "detailing"
password = "secret"

[admin]
password_hash = "$2a$10$abcdefghijklmnopqrstuv"

[whatsapp]
country_code = "351"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "default kept")
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "carlach_appointments", cfg.Redis.SnapshotKey)
	assert.Equal(t, "351", cfg.WhatsApp.CountryCode)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=detailing sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ADMIN_PASSWORD_HASH", "hash-from-env")

	cfg, err := Load(writeConfig(t, `[database]
password = "from-file"
`))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "hash-from-env", cfg.Admin.PasswordHash)
}

func TestLoad_MissingAdminHash(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load(writeConfig(t, `[server]
http_port = 8080
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_BadPort(t *testing.T) {
	_, err := Load(writeConfig(t, `[server]
http_port = 70000
[admin]
password_hash = "x"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, "[server\nhttp_port = "))
	assert.ErrorIs(t, err, ErrReadConfig)
}
