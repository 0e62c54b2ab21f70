package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overrides only set variables", func(t *testing.T) {
		t.Setenv("CATALOG_ENDPOINT", "http://env.example/characters")
		t.Setenv("CATALOG_FETCH_TIMEOUT", "2s")
		t.Setenv("CATALOG_STORAGE", "s3")
		t.Setenv("CATALOG_S3_BUCKET", "env-bucket")

		var cfg Config
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.Equal(t, "http://env.example/characters", cfg.Endpoint)
		assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
		assert.Equal(t, StorageS3, cfg.Storage)
		assert.Equal(t, "env-bucket", cfg.S3Bucket)
		assert.Equal(t, "catalog.db", cfg.DatabaseDSN)
		assert.Equal(t, 12, cfg.PageSize)
	})

	t.Run("malformed value panics", func(t *testing.T) {
		t.Setenv("CATALOG_PAGE_SIZE", "twelve")

		var cfg Config
		require.Panics(t, func() { parseEnv(&cfg) })
	})
}
