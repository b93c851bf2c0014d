// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"PORT", "BASE_URL", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_KEY_SALT", "IP_HASH_SALT",
	"EMAIL_HOST", "EMAIL_PORT", "EMAIL_SECURE", "EMAIL_USER", "EMAIL_PASS", "CONTACT_EMAIL",
	"MAIL_ENDPOINT", "MAIL_SIMULATE_DELAY", "GEO_URL", "GEO_CACHE_TTL", "GEO_CACHE_DIR",
	"IMAGES_DIR", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func noEnvFile(args ...string) []string {
	return append([]string{"-env-file", ""}, args...)
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(noEnvFile())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, 587, cfg.Email.Port)
	assert.Equal(t, time.Second, cfg.Email.SimulateDelay)
	assert.Equal(t, "Ops@royal-flightsupport.com", cfg.Email.To)
	assert.Equal(t, 6*time.Hour, cfg.Geo.CacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("EMAIL_HOST", "smtp.royal.test")
	t.Setenv("EMAIL_PORT", "465")
	t.Setenv("EMAIL_SECURE", "true")
	t.Setenv("MAIL_SIMULATE_DELAY", "0")
	t.Setenv("GEO_CACHE_TTL", "30m")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ParseFlags(noEnvFile())
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "smtp.royal.test", cfg.Email.Host)
	assert.Equal(t, 465, cfg.Email.Port)
	assert.True(t, cfg.Email.Secure)
	assert.Equal(t, time.Duration(0), cfg.Email.SimulateDelay)
	assert.Equal(t, 30*time.Minute, cfg.Geo.CacheTTL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := ParseFlags(noEnvFile("-p", "8080", "-d", "file:test.db", "-admin-salt", "s1", "-log-level", "debug"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port, "CLI should override env")
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, "s1", cfg.AdminKeySalt)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	yaml := `
port: 4000
email:
  host: smtp.yaml.test
  user: web@royal.test
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("EMAIL_HOST", "smtp.env.test")

	cfg, err := ParseFlags(noEnvFile("-config", path))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "smtp.env.test", cfg.Email.Host, "env should override the file")
	assert.Equal(t, "web@royal.test", cfg.Email.User)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseFlags_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	_, err := ParseFlags(noEnvFile("-config", filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestParseFlags_DotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EMAIL_USER=dotenv@royal.test\nPORT=7000\n"), 0o600))
	t.Setenv("PORT", "7100")

	cfg, err := ParseFlags([]string{"-env-file", path})
	require.NoError(t, err)

	assert.Equal(t, "dotenv@royal.test", cfg.Email.User)
	assert.Equal(t, 7100, cfg.Port, "existing env must not be overwritten by .env")
}

func TestParseFlags_MissingDotEnvIsFine(t *testing.T) {
	clearEnv(t)
	_, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "nope.env")})
	assert.NoError(t, err)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port", map[string]string{"PORT": "70000"}, nil},
		{"bad db type", map[string]string{"DATABASE_TYPE": "mysql"}, nil},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, nil},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, nil},
		{"negative delay", map[string]string{"MAIL_SIMULATE_DELAY": "-1s"}, nil},
		{"print key without salt", nil, []string{"-print-admin-key"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := ParseFlags(noEnvFile(tt.args...))
			assert.Error(t, err)
		})
	}
}
