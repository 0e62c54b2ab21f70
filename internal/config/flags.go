package config

import (
	"os"

	"github.com/dmitrijs2005/futurama-catalog/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   remote character endpoint
//	-s string   storage backend
//	-d string   database DSN
//	-p int      page size
//	-l string   locale
//	-v          debug logging
//
// Flags owned by other components (-c, -config) are skipped by flagx.Set.
func parseFlags(cfg *Config) {
	fs := flagx.NewSet("catalog")

	fs.StringVar(&cfg.Endpoint, "a", cfg.Endpoint, "remote character endpoint")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "draft storage backend (sqlite, postgres, s3, memory)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "page size")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "locale used for sorting")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
}
