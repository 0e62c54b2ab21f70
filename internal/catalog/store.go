// Package catalog holds the canonical in-memory character collection.
//
// The Store merges the remote list with locally created drafts, assigns ids
// to new characters and publishes its state through three replaying
// read-only views: entities, loading and error. Callers receive copies and
// never share slices with the canonical collection.
package catalog

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/futurama-catalog/internal/drafts"
	"github.com/dmitrijs2005/futurama-catalog/internal/logging"
	"github.com/dmitrijs2005/futurama-catalog/internal/models"
	"github.com/dmitrijs2005/futurama-catalog/internal/observable"
	"github.com/dmitrijs2005/futurama-catalog/internal/remote"
	"github.com/google/uuid"
)

// Store is the catalog state holder. Construct one per process with New and
// pass it to consumers.
//
// Mutations are serialized; only the remote fetch runs outside the lock, so
// CreateCharacter never waits for a network call. Subject observers run
// synchronously under that lock: they may read CurrentCatalog or the
// subjects' values but must not call LoadCatalog or CreateCharacter from
// inside the callback.
type Store struct {
	source remote.Source
	drafts drafts.Repository
	logger logging.Logger

	mu       sync.Mutex
	inflight int

	entities *observable.Subject[[]models.Character]
	loading  *observable.Subject[bool]
	errs     *observable.Subject[*LoadError]
}

// New returns an empty store. Nothing is fetched until LoadCatalog is called.
func New(source remote.Source, repo drafts.Repository, logger logging.Logger) *Store {
	return &Store{
		source:   source,
		drafts:   repo,
		logger:   logger.With("component", "catalog"),
		entities: observable.NewSubject([]models.Character{}),
		loading:  observable.NewSubject(false),
		errs:     observable.NewSubject[*LoadError](nil),
	}
}

// Entities streams the canonical collection. Every observer and every Value
// call receives its own copy.
func (s *Store) Entities() observable.Observable[[]models.Character] {
	return observable.ReadOnly(s.entities, models.CloneAll)
}

// Loading is true while at least one LoadCatalog call is in flight.
func (s *Store) Loading() observable.Observable[bool] {
	return observable.ReadOnly(s.loading, nil)
}

// Err streams the last load failure; nil once a new load starts.
func (s *Store) Err() observable.Observable[*LoadError] {
	return observable.ReadOnly(s.errs, nil)
}

// CurrentCatalog returns a copy of the latest canonical collection.
func (s *Store) CurrentCatalog() []models.Character {
	return models.CloneAll(s.entities.Value())
}

// LoadCatalog fetches the remote list and replaces the canonical collection
// with the defaulted remote records followed by the persisted drafts, re-read
// after the fetch completes.
//
// loading=true and error=nil are published before the fetch is issued.
// Concurrent calls are not coalesced; the last one to complete wins. On
// failure the previous collection is kept and the classified *LoadError is
// both published and returned.
func (s *Store) LoadCatalog(ctx context.Context) ([]models.Character, error) {
	log := s.logger.With("load_id", uuid.NewString())

	s.mu.Lock()
	s.inflight++
	s.loading.Publish(true)
	s.errs.Publish(nil)
	s.mu.Unlock()

	log.Debug(ctx, "loading catalog")
	raw, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if err != nil {
		loadErr := newLoadError(err)
		log.Error(ctx, "catalog load failed", "kind", loadErr.Kind.String(), "error", err)
		s.errs.Publish(loadErr)
		s.loading.Publish(s.inflight > 0)
		return nil, loadErr
	}

	remoteItems := models.NormalizeAll(raw)
	local := s.drafts.List(ctx)
	merged := s.merge(ctx, log, remoteItems, local)

	s.entities.Publish(merged)
	s.loading.Publish(s.inflight > 0)
	log.Info(ctx, "catalog loaded", "remote", len(remoteItems), "local", len(local))

	return models.CloneAll(merged), nil
}

// CreateCharacter assigns the next id, persists the character as a draft and
// appends it to the canonical collection. The id exceeds every id in both
// the current collection and the persisted drafts, so drafts created before
// the first load never collide with each other.
//
// The only error is a persistence failure, in which case the collection is
// left untouched.
func (s *Store) CreateCharacter(ctx context.Context, d models.Draft) (models.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.entities.Value()
	id := models.MaxID(current, s.drafts.List(ctx)) + 1
	c := d.Build(id)

	if err := s.drafts.Append(ctx, c); err != nil {
		s.logger.Error(ctx, "failed to persist character", "id", id, "error", err)
		return models.Character{}, err
	}

	next := make([]models.Character, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, c)
	s.entities.Publish(next)

	s.logger.Info(ctx, "character created", "id", id, "name", c.Name.Full())
	return c.Clone(), nil
}

func (s *Store) merge(ctx context.Context, log logging.Logger, remoteItems, local []models.Character) []models.Character {
	merged := make([]models.Character, 0, len(remoteItems)+len(local))
	merged = append(merged, remoteItems...)
	merged = append(merged, local...)

	seen := make(map[int]struct{}, len(merged))
	for _, c := range merged {
		if _, dup := seen[c.ID]; dup {
			log.Warn(ctx, "duplicate character id in merged catalog", "id", c.ID)
			continue
		}
		seen[c.ID] = struct{}{}
	}
	return merged
}
