package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/inventory"
	"github.com/italianiroberto75-cyber/FRIGO/internal/llm"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/testutil"
)

var testNow = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

// stubSuggester answers from a fixed table and records lookups.
type stubSuggester struct {
	answers map[string]model.Suggestion
	calls   []string
	mu      sync.Mutex
}

func (s *stubSuggester) Suggest(_ context.Context, name string, isFrozen bool) model.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
	if answer, ok := s.answers[name]; ok {
		return answer
	}
	return model.FallbackSuggestion(isFrozen)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newTestEngine(t *testing.T, suggester *stubSuggester) (*Engine, *testutil.TestDB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := inventory.New(db.Storage, "", quietLogger())
	store.Load(context.Background())

	counter := 0
	e := New(store, suggester,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			counter++
			return fmt.Sprintf("id-%02d", counter)
		}),
		WithLogger(quietLogger()))
	return e, db
}

func TestEngine_AddUsesSuggestion(t *testing.T) {
	ctx := context.Background()
	suggester := &stubSuggester{answers: map[string]model.Suggestion{
		"Milk":  {DaysToExpiry: 7, Category: model.CategoryDairy, Icon: "fa-cheese"},
		"Bread": {DaysToExpiry: 2, Category: model.CategoryBakery, Icon: "fa-bread-slice"},
		"Rice":  {DaysToExpiry: 300, Category: model.CategoryPantry, Icon: "fa-bowl-rice"},
	}}
	e, db := newTestEngine(t, suggester)

	_, err := e.Add(ctx, "Rice", false)
	require.NoError(t, err)
	_, err = e.Add(ctx, "Bread", false)
	require.NoError(t, err)

	result, err := e.Add(ctx, "  Milk ", false)
	require.NoError(t, err)

	assert.False(t, result.UsedFallback)
	assert.Equal(t, "Milk", result.Entry.Name)
	assert.Equal(t, model.CategoryDairy, result.Entry.Category)
	assert.Equal(t, "fa-cheese", result.Entry.Icon)
	assert.Equal(t, testNow.AddDate(0, 0, 7), result.Entry.ExpiryDate)

	items := e.Store().Items()
	names := []string{items[0].Name, items[1].Name, items[2].Name}
	assert.Equal(t, []string{"Bread", "Milk", "Rice"}, names, "sorted by expiry")
	assert.Len(t, db.MustSnapshot(inventory.DefaultKey), 3)
}

func TestEngine_AddFallback(t *testing.T) {
	e, _ := newTestEngine(t, &stubSuggester{})

	result, err := e.Add(context.Background(), "Mystery Item", false)
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, model.CategoryOther, result.Entry.Category)
	assert.Equal(t, "fa-utensils", result.Entry.Icon)
	assert.Equal(t, testNow.AddDate(0, 0, 5), result.Entry.ExpiryDate)

	frozen, err := e.Add(context.Background(), "Mystery Item", true)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, 90), frozen.Entry.ExpiryDate)
	assert.True(t, frozen.Entry.IsFrozen)
}

func TestEngine_AddEmptyName(t *testing.T) {
	suggester := &stubSuggester{}
	e, _ := newTestEngine(t, suggester)

	_, err := e.Add(context.Background(), "   ", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyName)
	assert.Equal(t, "Please enter a food name", common.UserMessage(err))
	assert.Empty(t, suggester.calls, "classifier is not consulted")
	assert.Empty(t, e.Store().Items())
}

func TestEngine_AddWithGateway(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := inventory.New(db.Storage, "", quietLogger())
	gw := llm.NewGateway(llm.NewMockClient(`{"daysToExpiry": 7, "category": "Dairy", "icon": "fa-cheese"}`), llm.WithLogger(quietLogger()))
	e := New(store, gw, WithClock(func() time.Time { return testNow }), WithLogger(quietLogger()))

	result, err := e.Add(context.Background(), "Milk", false)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryDairy, result.Entry.Category)
	assert.Equal(t, testNow.AddDate(0, 0, 7), result.Entry.ExpiryDate)
	assert.Len(t, result.Entry.ID, 36, "uuid")
}

func TestEngine_Edit(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, &stubSuggester{})
	added, err := e.Add(ctx, "Mystery Item", false)
	require.NoError(t, err)

	updated, err := e.Edit(ctx, added.Entry.ID, " Gouda ", "dairy")
	require.NoError(t, err)
	assert.Equal(t, "Gouda", updated.Name)
	assert.Equal(t, model.CategoryDairy, updated.Category)
	assert.Equal(t, model.CategoryDairy.Icon(), updated.Icon)
	assert.Equal(t, added.Entry.ExpiryDate, updated.ExpiryDate)

	_, err = e.Edit(ctx, added.Entry.ID, "", model.CategoryDairy)
	assert.ErrorIs(t, err, common.ErrEmptyName)

	_, err = e.Edit(ctx, added.Entry.ID, "Gouda", "Cheese")
	assert.ErrorIs(t, err, common.ErrInvalidCategory)

	_, err = e.Edit(ctx, "nope", "Gouda", model.CategoryDairy)
	assert.ErrorIs(t, err, common.ErrNotFound)

	current, ok := e.Store().Get(added.Entry.ID)
	require.True(t, ok)
	assert.Equal(t, "Gouda", current.Name, "failed edits change nothing")
}

func TestEngine_Remove(t *testing.T) {
	ctx := context.Background()
	e, db := newTestEngine(t, &stubSuggester{})
	added, err := e.Add(ctx, "Milk", false)
	require.NoError(t, err)

	removed, err := e.Remove(ctx, added.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", removed.Name)
	assert.Empty(t, e.Store().Items())
	assert.Empty(t, db.MustSnapshot(inventory.DefaultKey))

	_, err = e.Remove(ctx, added.Entry.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEngine_Resolve(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t, &stubSuggester{})
	for _, name := range []string{"Milk", "Eggs"} {
		_, err := e.Add(ctx, name, false)
		require.NoError(t, err)
	}

	got, err := e.Resolve("id-01")
	require.NoError(t, err)
	assert.Equal(t, "Milk", got.Name)

	_, err = e.Resolve("id-0")
	assert.ErrorIs(t, err, common.ErrNotFound, "ambiguous prefix")
	assert.Contains(t, common.UserMessage(err), "matches 2 items")

	_, err = e.Resolve("zzz")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEngine_AddBatch(t *testing.T) {
	suggester := &stubSuggester{answers: map[string]model.Suggestion{
		"Milk": {DaysToExpiry: 7, Category: model.CategoryDairy, Icon: "fa-cheese"},
	}}
	e, _ := newTestEngine(t, suggester)

	var progress [][2]int
	summary, err := e.AddBatch(context.Background(), []BatchItem{
		{Name: "Milk"},
		{Name: "  "},
		{Name: "Peas", IsFrozen: true},
	}, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	require.NoError(t, err)

	assert.Len(t, summary.Added, 2)
	assert.Len(t, summary.Skipped, 1)
	assert.Equal(t, 1, summary.FallbackCount)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress)
	assert.Equal(t, []string{"Milk", "Peas"}, suggester.calls, "sequential, in order")
}

func TestEngine_AddBatchCanceled(t *testing.T) {
	e, _ := newTestEngine(t, &stubSuggester{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := e.AddBatch(ctx, []BatchItem{{Name: "Milk"}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, summary.Added)
}

func TestEngine_LastSaveError(t *testing.T) {
	kv := testutil.NewMemoryKV()
	store := inventory.New(kv, "", quietLogger())
	e := New(store, &stubSuggester{}, WithLogger(quietLogger()))

	kv.SetFailure(fmt.Errorf("read-only"))
	_, err := e.Add(context.Background(), "Milk", false)
	require.NoError(t, err, "persistence failures are not add failures")
	assert.Error(t, e.LastSaveError())
	assert.Len(t, store.Items(), 1)
}

func TestEngine_AddBatchLogsThroughEngineLogger(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := inventory.New(db.Storage, "", quietLogger())

	var logs bytes.Buffer
	e := New(store, &stubSuggester{},
		WithClock(func() time.Time { return testNow }),
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	_, err := e.AddBatch(context.Background(), []BatchItem{{Name: "Milk"}}, nil)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "batch add finished")
}

func TestEngine_AddRejectsTakenID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := inventory.New(db.Storage, "", quietLogger())
	e := New(store, &stubSuggester{},
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { return "same" }),
		WithLogger(quietLogger()))

	_, err := e.Add(context.Background(), "Milk", false)
	require.NoError(t, err)

	_, err = e.Add(context.Background(), "Eggs", false)
	require.ErrorIs(t, err, common.ErrDuplicateID)
	assert.Len(t, store.Items(), 1)
}
