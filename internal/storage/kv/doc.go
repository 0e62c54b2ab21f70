// Package kv provides single-key blob storage used by the local draft
// repository.
//
// # Overview
//
// A Store keeps opaque byte values under string keys. Values are always read
// and written whole; there is no partial update. Update performs a
// read-modify-write of one key and is atomic for the SQL backends (the read
// and the write share one transaction).
//
// Backends:
//
//   - SQLStore: a "metadata" table in SQLite (modernc.org/sqlite) or
//     Postgres (pgx); the schema is applied with embedded goose migrations.
//   - S3Store: one object per key in an S3-compatible bucket.
//   - MemoryStore: process-local map.
//
// # Contract
//
// Get returns (nil, nil) when the key is absent.
package kv

import "context"

// Store is a minimal key/value contract over whole-blob values.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Update reads the current value (nil if absent), passes it to fn and
	// stores the result. If fn returns an error nothing is written.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}
