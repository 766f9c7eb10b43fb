package inventory

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, *testutil.TestDB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := New(db.Storage, "", slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	store.Load(context.Background())
	return store, db
}

func TestStore_PersistsEveryChange(t *testing.T) {
	ctx := context.Background()
	store, db := newTestStore(t)

	store.Add(ctx, entry("b", 3))
	store.Add(ctx, entry("a", 1))
	assert.Equal(t, []string{"a", "b"}, ids(db.MustSnapshot(DefaultKey)))

	store.Update(ctx, "a", model.EntryPatch{Name: ptr("Apple")})
	snapshot := db.MustSnapshot(DefaultKey)
	assert.Equal(t, "Apple", snapshot[0].Name)

	store.Remove(ctx, "b")
	assert.Equal(t, []string{"a"}, ids(db.MustSnapshot(DefaultKey)))
	assert.NoError(t, store.LastSaveError())
}

func TestStore_LoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, db := newTestStore(t)
	store.Add(ctx, entry("a", 1))
	store.Add(ctx, entry("b", 2))

	reloaded := New(db.Storage, DefaultKey, nil)
	reloaded.Load(ctx)

	assert.Equal(t, ids(store.Items()), ids(reloaded.Items()))
	got, ok := reloaded.Get("b")
	require.True(t, ok)
	assert.True(t, got.ExpiryDate.Equal(refTime.AddDate(0, 0, 2)))
}

func TestStore_LoadMissingOrCorrupt(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		store, _ := newTestStore(t)
		assert.Empty(t, store.Items())
	})

	t.Run("corrupt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		db.SeedRaw(DefaultKey, []byte("{not json"))

		store := New(db.Storage, "", nil)
		store.Load(ctx)
		assert.Empty(t, store.Items())
	})

	t.Run("read failure", func(t *testing.T) {
		kv := testutil.NewMemoryKV()
		kv.GetErr = errors.New("disk gone")

		store := New(kv, "", nil)
		store.Load(ctx)
		assert.Empty(t, store.Items())
	})
}

func TestStore_LoadDropsInvalidAndSorts(t *testing.T) {
	ctx := context.Background()
	bad := entry("bad", 0)
	bad.Category = "Snacks"
	nameless := entry("nameless", 0)
	nameless.Name = " "

	db := testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{
		Entries: []model.FoodEntry{entry("late", 9), bad, nameless, entry("early", 1)},
	})

	store := New(db.Storage, "", nil)
	store.Load(ctx)

	assert.Equal(t, []string{"early", "late"}, ids(store.Items()))
}

func TestStore_AddRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	store, db := newTestStore(t)

	require.NoError(t, store.Add(ctx, entry("x", 1)))
	again := entry("x", 5)
	again.Name = "Second"
	err := store.Add(ctx, again)

	require.ErrorIs(t, err, common.ErrDuplicateID)
	assert.Equal(t, []string{"x"}, ids(store.Items()))
	got, _ := store.Get("x")
	assert.Equal(t, "x", got.Name)
	assert.Equal(t, []string{"x"}, ids(db.MustSnapshot(DefaultKey)))
}

func TestStore_AddRejectsInvalidEntry(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	store := New(kv, "", slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, store.Add(ctx, entry("a", 1)))
	writes := kv.Writes()

	bad := model.FoodEntry{ID: "y", Name: "  ", Category: "Bogus"}
	err := store.Add(ctx, bad)
	require.ErrorIs(t, err, common.ErrEmptyName)

	state := store.Dispatch(ctx, AddItem{Entry: model.FoodEntry{ID: "z", Name: "Kale", Category: "Bogus"}})
	assert.Equal(t, []string{"a"}, ids(state.Items))
	assert.Equal(t, writes, kv.Writes(), "rejected adds are not persisted")

	reloaded := New(kv, "", nil)
	reloaded.Load(ctx)
	assert.Equal(t, []string{"a"}, ids(reloaded.Items()))
}

func TestStore_LoadSkipsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	first := entry("x", 3)
	first.Name = "First"
	second := entry("x", 1)
	second.Name = "Second"

	db := testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{
		Entries: []model.FoodEntry{first, entry("y", 2), second},
	})

	store := New(db.Storage, "", slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	store.Load(ctx)

	assert.Equal(t, []string{"y", "x"}, ids(store.Items()))
	got, ok := store.Get("x")
	require.True(t, ok)
	assert.Equal(t, "First", got.Name)

	store.Remove(ctx, "x")
	assert.Equal(t, []string{"y"}, ids(store.Items()))
}

func TestStore_PersistenceFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	store := New(kv, "", slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	kv.SetFailure(errors.New("quota exceeded"))
	store.Add(ctx, entry("a", 1))

	assert.Len(t, store.Items(), 1)
	require.Error(t, store.LastSaveError())
	assert.Contains(t, store.LastSaveError().Error(), "quota exceeded")

	kv.SetFailure(nil)
	require.NoError(t, store.Close(ctx))
	assert.NoError(t, store.LastSaveError())

	reloaded := New(kv, "", nil)
	reloaded.Load(ctx)
	assert.Equal(t, []string{"a"}, ids(reloaded.Items()))
}

func TestStore_DispatchUIOnlyDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	store := New(kv, "", nil)

	store.Dispatch(ctx, SelectFacet{Facet: "Frozen"})
	store.Dispatch(ctx, StartEdit{ID: "a"})
	assert.Zero(t, kv.Writes())
	assert.Equal(t, "Frozen", store.State().Facet)

	store.Add(ctx, entry("a", 1))
	assert.Equal(t, 1, kv.Writes())
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.Add(ctx, entry("a", 1))

	items := store.Items()
	items[0].Name = "changed"

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.Name)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}
