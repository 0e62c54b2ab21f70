package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.sampleapis.com/futurama/characters", c.Endpoint)
	assert.Equal(t, 10*time.Second, c.FetchTimeout)
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.Equal(t, "catalog.db", c.DatabaseDSN)
	assert.Equal(t, 12, c.PageSize)
	assert.Equal(t, "en", c.Locale)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"memory", func(c *Config) { c.Storage = StorageMemory }, false},
		{"s3", func(c *Config) { c.Storage = StorageS3 }, false},
		{"unknown storage", func(c *Config) { c.Storage = "redis" }, true},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, true},
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			if tt.wantErr {
				require.Error(t, c.Validate())
				return
			}
			require.NoError(t, c.Validate())
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint":  "http://json.example/characters",
		"storage":   "memory",
		"locale":    "de",
		"page_size": 20,
	})
	t.Setenv("CATALOG_LOCALE", "fr")
	t.Setenv("CATALOG_PAGE_SIZE", "30")

	os.Args = []string{"testbin", "-c", path, "-p", "5"}
	c := LoadConfig()

	require.NotNil(t, c)
	assert.Equal(t, "http://json.example/characters", c.Endpoint, "from json")
	assert.Equal(t, StorageMemory, c.Storage, "from json")
	assert.Equal(t, "fr", c.Locale, "env overrides json")
	assert.Equal(t, 5, c.PageSize, "flag overrides env")
	assert.Equal(t, 10*time.Second, c.FetchTimeout, "default kept")
}
