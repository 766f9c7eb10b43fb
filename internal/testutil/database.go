// Package testutil provides shared test helpers: migrated in-memory SQLite
// databases, entry builders and fault-injecting stores.
package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup    func(context.Context, *storage.SQLiteStorage) error
	SnapshotKey    string
	Entries        []model.FoodEntry
	SkipMigrations bool
}

// SetupTestDB creates a new migrated in-memory database that is closed when
// the test ends.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{})
}

// SetupTestDBWithOptions creates a test database with custom options.
//
// Example:
//
//	db := testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{
//		Entries: testutil.NewEntryBuilder(now).Add("Milk", model.CategoryDairy, 7).Build(),
//	})
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	db := &TestDB{Storage: store, t: t}

	if opts.Entries != nil {
		key := opts.SnapshotKey
		if key == "" {
			key = "foodItems"
		}
		db.SeedSnapshot(key, opts.Entries)
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return db
}

// SeedSnapshot writes entries as the JSON snapshot under key.
func (db *TestDB) SeedSnapshot(key string, entries []model.FoodEntry) {
	db.t.Helper()

	data, err := json.Marshal(entries)
	if err != nil {
		db.t.Fatalf("failed to marshal entries: %v", err)
	}
	db.SeedRaw(key, data)
}

// SeedRaw writes raw bytes under key.
func (db *TestDB) SeedRaw(key string, data []byte) {
	db.t.Helper()

	if err := db.Storage.Set(context.Background(), key, data); err != nil {
		db.t.Fatalf("failed to seed %q: %v", key, err)
	}
}

// MustSnapshot reads and decodes the snapshot stored under key.
func (db *TestDB) MustSnapshot(key string) []model.FoodEntry {
	db.t.Helper()

	data, err := db.Storage.Get(context.Background(), key)
	if err != nil {
		db.t.Fatalf("failed to read %q: %v", key, err)
	}

	var entries []model.FoodEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		db.t.Fatalf("failed to decode %q: %v", key, err)
	}
	return entries
}
