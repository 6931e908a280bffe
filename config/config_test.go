package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp keeps a stray .env in the package directory out of Load.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		chdirTemp(t)
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 1800, cfg.Fulfillment.CapacityG)
		assert.True(t, cfg.Fulfillment.CatalogAutoload)
		assert.False(t, cfg.Fulfillment.StrictRestock)
		assert.Empty(t, cfg.Fulfillment.BacklogReportSchedule)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, "drone_fulfillment", cfg.Database.DatabaseName)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("loads values from environment", func(t *testing.T) {
		chdirTemp(t)
		os.Clearenv()
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("DRONE_CAPACITY_G", "2500")
		t.Setenv("CATALOG_FILE", "/etc/catalog.json")
		t.Setenv("CATALOG_AUTOLOAD", "false")
		t.Setenv("STRICT_RESTOCK", "true")
		t.Setenv("BACKLOG_REPORT_SCHEDULE", "0 */5 * * * *")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("API_KEYS", "key1, key2")
		t.Setenv("LOG_PRETTY", "true")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 2500, cfg.Fulfillment.CapacityG)
		assert.Equal(t, "/etc/catalog.json", cfg.Fulfillment.CatalogFile)
		assert.False(t, cfg.Fulfillment.CatalogAutoload)
		assert.True(t, cfg.Fulfillment.StrictRestock)
		assert.Equal(t, "0 */5 * * * *", cfg.Fulfillment.BacklogReportSchedule)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Log.Pretty)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		chdirTemp(t)
		os.Clearenv()
		t.Setenv("RATE_LIMIT", "invalid")
		t.Setenv("AUTH_ENABLED", "invalid")
		t.Setenv("RATE_WINDOW", "invalid")
		t.Setenv("DRONE_CAPACITY_G", "heavy")

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 1800, cfg.Fulfillment.CapacityG)
	})

	t.Run("reads .env file", func(t *testing.T) {
		dir := chdirTemp(t)
		os.Clearenv()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DRONE_CAPACITY_G=900\nPORT=7070\n"), 0o600))

		cfg := Load()

		assert.Equal(t, 900, cfg.Fulfillment.CapacityG)
		assert.Equal(t, "7070", cfg.Server.Port)
	})

	t.Run("environment wins over .env", func(t *testing.T) {
		dir := chdirTemp(t)
		os.Clearenv()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0o600))
		t.Setenv("PORT", "6060")

		assert.Equal(t, "6060", Load().Server.Port)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Fulfillment: FulfillmentConfig{CapacityG: 1800}}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "non-positive capacity",
			mutate:  func(c *Config) { c.Fulfillment.CapacityG = 0 },
			wantErr: "DRONE_CAPACITY_G",
		},
		{
			name:    "bad cron schedule",
			mutate:  func(c *Config) { c.Fulfillment.BacklogReportSchedule = "every minute" },
			wantErr: "BACKLOG_REPORT_SCHEDULE",
		},
		{
			name:   "descriptor schedule",
			mutate: func(c *Config) { c.Fulfillment.BacklogReportSchedule = "@every 1m" },
		},
		{
			name:    "auth without credentials",
			mutate:  func(c *Config) { c.Auth.Enabled = true },
			wantErr: "AUTH_ENABLED",
		},
		{
			name: "auth with jwt secret",
			mutate: func(c *Config) {
				c.Auth.Enabled = true
				c.Auth.JWTSecretKey = "secret"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, parseCORSOrigins(""))
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://127.0.0.1:3000", "https://ops.example.org"},
		parseCORSOrigins(" https://ops.example.org , "),
	)
}

func TestParseAPIKeys(t *testing.T) {
	assert.Nil(t, parseAPIKeys(""))
	assert.Equal(t, map[string]bool{"a": true, "b": true}, parseAPIKeys("a, ,b"))
}
