package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/service"
	"github.com/italianiroberto75-cyber/FRIGO/internal/storage"
)

// DefaultKey is the storage key of the snapshot.
const DefaultKey = "foodItems"

// Store owns the state and mirrors every change of the item collection to a
// key-value snapshot. Persistence failures never undo an in-memory change.
type Store struct {
	kv      service.KeyValueStore
	logger  *slog.Logger
	saveErr error
	key     string
	state   State
	mu      sync.RWMutex
}

// New creates an empty store backed by kv. Call Load to read the snapshot.
func New(kv service.KeyValueStore, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		kv:     kv,
		key:    key,
		logger: common.LoggerOrDefault(logger),
		state:  NewState(nil),
	}
}

// Load replaces the state with the persisted snapshot. A missing or corrupt
// snapshot yields an empty collection. Invalid entries and repeated ids are
// dropped; the first entry with an id wins.
func (s *Store) Load(ctx context.Context) {
	items := s.readSnapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = NewState(items)
}

func (s *Store) readSnapshot(ctx context.Context) []model.FoodEntry {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Debug("no snapshot found, starting empty", "key", s.key)
		} else {
			s.logger.Warn("failed to read snapshot, starting empty", "key", s.key, "error", err)
		}
		return nil
	}

	var raw []model.FoodEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("corrupt snapshot, starting empty", "key", s.key, "error", err)
		return nil
	}

	items := make([]model.FoodEntry, 0, len(raw))
	for _, entry := range raw {
		if err := checkAdd(items, entry); err != nil {
			s.logger.Warn("dropping invalid entry", "id", entry.ID, "name", entry.Name, "error", err)
			continue
		}
		items = append(items, entry)
	}

	s.logger.Debug("loaded snapshot", "items", len(items), "dropped", len(raw)-len(items))
	return items
}

// Dispatch applies cmd and persists when the item collection changed.
// A rejected AddItem is logged and leaves the state untouched.
func (s *Store) Dispatch(ctx context.Context, cmd Command) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.applyLocked(ctx, cmd)
	return s.snapshotLocked()
}

// Add appends entry. An invalid entry or a taken id is rejected without
// touching the state or the snapshot.
func (s *Store) Add(ctx context.Context, entry model.FoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyLocked(ctx, AddItem{Entry: entry})
}

func (s *Store) applyLocked(ctx context.Context, cmd Command) error {
	if add, ok := cmd.(AddItem); ok {
		if err := checkAdd(s.state.Items, add.Entry); err != nil {
			s.logger.Warn("rejecting entry", "id", add.Entry.ID, "name", add.Entry.Name, "error", err)
			return err
		}
	}

	s.state = Reduce(s.state, cmd)
	if itemsChanged(cmd) {
		_ = s.persistLocked(ctx)
	}
	return nil
}

// Remove deletes the entry with id. Unknown ids change nothing.
func (s *Store) Remove(ctx context.Context, id string) {
	s.Dispatch(ctx, RemoveItem{ID: id})
}

// Update merges patch into the entry with id. Unknown ids change nothing.
func (s *Store) Update(ctx context.Context, id string, patch model.EntryPatch) {
	s.Dispatch(ctx, UpdateItem{ID: id, Patch: patch})
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Items returns a copy of the entries in expiry order.
func (s *Store) Items() []model.FoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.state.Items)
}

// Get returns the entry with id.
func (s *Store) Get(id string) (model.FoodEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.state.Items {
		if item.ID == id {
			return item, true
		}
	}
	return model.FoodEntry{}, false
}

// LastSaveError returns the error of the most recent write, or nil.
func (s *Store) LastSaveError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveErr
}

// Save writes the current snapshot and returns any failure.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

// Close flushes the snapshot.
func (s *Store) Close(ctx context.Context) error {
	return s.Save(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.state.Items)
	if err == nil {
		err = s.kv.Set(ctx, s.key, data)
	}
	if err != nil {
		err = fmt.Errorf("failed to persist snapshot: %w", err)
		s.logger.Error("persistence failed, keeping in-memory state", "key", s.key, "error", err)
	}
	s.saveErr = err
	return err
}

func (s *Store) snapshotLocked() State {
	st := s.state
	st.Items = cloneItems(st.Items)
	return st
}
