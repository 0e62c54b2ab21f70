// Package migrations embeds the goose migrations for the SQL kv backends.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
