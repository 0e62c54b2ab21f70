package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment variable read by parseEnv.
const EnvPrefix = "CATALOG_"

// parseEnv overlays Config with CATALOG_* environment variables. Variables
// that are unset leave the field unchanged. A .env file is loaded first when
// present; it never overrides variables already set in the process.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
