package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/futurama-catalog/internal/remote"
)

// Storage backends for the draft log.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageS3       = "s3"
	StorageMemory   = "memory"
)

// Config holds runtime settings for the catalog CLI.
//
// Fields:
//   - Endpoint / FetchTimeout: remote character source.
//   - Storage: backend for locally created characters.
//   - DatabaseDSN: file path (sqlite) or pgx DSN (postgres).
//   - S3*: object storage settings used when Storage is "s3".
//   - PageSize / Locale: list view settings.
//   - LogLevel / LogFormat: structured logger settings.
type Config struct {
	Endpoint     string        `env:"ENDPOINT"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT"`

	Storage     string `env:"STORAGE"`
	DatabaseDSN string `env:"DATABASE_DSN"`

	S3Bucket       string `env:"S3_BUCKET"`
	S3Region       string `env:"S3_REGION"`
	S3BaseEndpoint string `env:"S3_BASE_ENDPOINT"`
	S3AccessKey    string `env:"S3_ACCESS_KEY"`
	S3SecretKey    string `env:"S3_SECRET_KEY"`
	S3Prefix       string `env:"S3_PREFIX"`

	PageSize int    `env:"PAGE_SIZE"`
	Locale   string `env:"LOCALE"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = remote.DefaultEndpoint
	c.FetchTimeout = 10 * time.Second
	c.Storage = StorageSQLite
	c.DatabaseDSN = "catalog.db"
	c.S3Bucket = "catalog"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3Prefix = "catalog/drafts/"
	c.PageSize = 12
	c.Locale = "en"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports settings no backend can work with.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StoragePostgres, StorageS3, StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
