// Package config loads runtime configuration for the catalog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with CATALOG_ (see parseEnv). A .env
//     file in the working directory is loaded first if present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   remote character endpoint
//	-s string   draft storage backend: sqlite, postgres, s3 or memory
//	-d string   database DSN for sqlite/postgres
//	-p int      list page size
//	-l string   locale used for sorting (BCP 47)
//
// # JSON schema
//
//	{
//	  "endpoint": "https://api.sampleapis.com/futurama/characters",
//	  "fetch_timeout": "10s",
//	  "storage": "sqlite",
//	  "database_dsn": "catalog.db",
//	  "s3_bucket": "catalog",
//	  "page_size": 12,
//	  "locale": "en",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
