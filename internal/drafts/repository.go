// Package drafts is the Local Draft Repository: a durable, append-only log of
// characters created on this machine. The whole log lives under one kv key as
// a JSON array and is always read and written as a single blob.
package drafts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/futurama-catalog/internal/logging"
	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/dmitrijs2005/futurama-catalog/internal/storage/kv"
)

// StorageKey is the key holding the persisted log.
const StorageKey = "local-characters"

// Repository describes the draft log.
type Repository interface {
	// Append adds one character to the end of the log.
	Append(ctx context.Context, c models.Character) error

	// List returns the persisted log in insertion order. A missing or corrupt
	// blob yields an empty slice; the anomaly is logged, never returned.
	List(ctx context.Context) []models.Character
}

// KVRepository implements Repository on top of a kv.Store.
type KVRepository struct {
	store  kv.Store
	logger logging.Logger
}

// NewKVRepository returns a repository persisting to store.
func NewKVRepository(store kv.Store, logger logging.Logger) *KVRepository {
	return &KVRepository{store: store, logger: logger.With("component", "drafts")}
}

// List implements Repository.
func (r *KVRepository) List(ctx context.Context) []models.Character {
	blob, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		r.logger.Warn(ctx, "draft store unreadable, treating as empty", "error", err)
		return []models.Character{}
	}
	return r.decode(ctx, blob)
}

// Append implements Repository. A corrupt blob is replaced by a log holding
// only c.
func (r *KVRepository) Append(ctx context.Context, c models.Character) error {
	err := r.store.Update(ctx, StorageKey, func(current []byte) ([]byte, error) {
		list := r.decode(ctx, current)
		list = append(list, c.Clone())
		return json.Marshal(list)
	})
	if err != nil {
		return fmt.Errorf("append draft %d: %w", c.ID, err)
	}
	return nil
}

func (r *KVRepository) decode(ctx context.Context, blob []byte) []models.Character {
	if len(blob) == 0 {
		return []models.Character{}
	}
	var list []models.Character
	if err := json.Unmarshal(blob, &list); err != nil {
		r.logger.Warn(ctx, "corrupt draft blob, treating as empty", "error", err, "bytes", len(blob))
		return []models.Character{}
	}
	if list == nil {
		list = []models.Character{}
	}
	return list
}
