package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "calendar"
password = "secret"
dbname = "calendar"

[logs]
level = "debug"

[metrics]
enabled = true

[calendar]
open_time = "09:00"
close_time = "18:00"
timezone = "Europe/Moscow"

[cache]
enabled = true
addr = "redis:6379"
ttl = 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "default is kept")
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "09:00", cfg.Calendar.OpenTime)
	assert.Equal(t, 30, cfg.Cache.TTL)

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	assert.Equal(t, "host=db port=5432 user=calendar password=secret dbname=calendar sslmode=disable", cfg.Database.DSN())
}

func TestLoad_PasswordFromEnv(t *testing.T) {
	t.Setenv(envDBPassword, "from-env")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"no dbname", func(c *Config) { c.Database.DBName = "" }},
		{"bad open time", func(c *Config) { c.Calendar.OpenTime = "8am" }},
		{"close before open", func(c *Config) { c.Calendar.OpenTime, c.Calendar.CloseTime = "17:00", "08:00" }},
		{"fractional hours", func(c *Config) { c.Calendar.OpenTime, c.Calendar.CloseTime = "08:30", "17:15" }},
		{"unknown timezone", func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }},
		{"cache without ttl", func(c *Config) { c.Cache.Enabled = true; c.Cache.TTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Database.DBName = "calendar"
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := Default()
	cfg.Database.DBName = "calendar"
	assert.NoError(t, cfg.Validate())
}
