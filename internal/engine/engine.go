// Package engine implements the fridge use cases on top of the inventory
// store and the classifier gateway.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/inventory"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/service"
)

// Engine orchestrates adding, editing and viewing food entries.
type Engine struct {
	store     *inventory.Store
	suggester service.Suggester
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides how entry ids are made.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = common.LoggerOrDefault(logger)
	}
}

// New creates an engine with the given dependencies.
func New(store *inventory.Store, suggester service.Suggester, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		suggester: suggester,
		logger:    slog.Default(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the underlying inventory store.
func (e *Engine) Store() *inventory.Store {
	return e.store
}

// Now returns the engine clock reading.
func (e *Engine) Now() time.Time {
	return e.now()
}

// AddResult is the outcome of adding one item.
type AddResult struct {
	Entry        model.FoodEntry
	UsedFallback bool
}

// Add classifies name and stores the new entry. An empty name is rejected
// before anything else happens.
func (e *Engine) Add(ctx context.Context, name string, isFrozen bool) (AddResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AddResult{}, common.NewUserError("Please enter a food name", common.ErrEmptyName)
	}

	suggestion := e.suggester.Suggest(ctx, name, isFrozen)

	category := suggestion.Category
	if !category.IsValid() {
		category = model.CategoryOther
	}
	icon := strings.TrimSpace(suggestion.Icon)
	if icon == "" {
		icon = category.Icon()
	}

	entry := model.FoodEntry{
		ID:         e.newID(),
		Name:       name,
		Category:   category,
		Icon:       icon,
		ExpiryDate: e.now().AddDate(0, 0, suggestion.DaysToExpiry),
		IsFrozen:   isFrozen,
	}

	if err := e.store.Add(ctx, entry); err != nil {
		return AddResult{}, fmt.Errorf("failed to store %q: %w", name, err)
	}
	e.logger.Info("added item",
		"id", entry.ID,
		"name", entry.Name,
		"category", entry.Category,
		"frozen", entry.IsFrozen,
		"expires", entry.ExpiryDate.Format(time.DateOnly),
		"fallback", suggestion.Fallback)

	return AddResult{Entry: entry, UsedFallback: suggestion.Fallback}, nil
}

// Edit renames and recategorizes an entry. The icon follows the category.
func (e *Engine) Edit(ctx context.Context, id, name string, category model.Category) (model.FoodEntry, error) {
	current, ok := e.store.Get(id)
	if !ok {
		return model.FoodEntry{}, fmt.Errorf("item %q: %w", id, common.ErrNotFound)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return current, common.NewUserError("Please enter a food name", common.ErrEmptyName)
	}

	parsed, ok := model.ParseCategory(string(category))
	if !ok {
		return current, common.NewUserError(
			fmt.Sprintf("Unknown category %q", category),
			fmt.Errorf("%w: %q", common.ErrInvalidCategory, category))
	}

	icon := parsed.Icon()
	e.store.Update(ctx, id, model.EntryPatch{
		Name:     &name,
		Category: &parsed,
		Icon:     &icon,
	})

	updated, _ := e.store.Get(id)
	e.logger.Info("edited item", "id", id, "name", updated.Name, "category", updated.Category)
	return updated, nil
}

// Remove deletes an entry.
func (e *Engine) Remove(ctx context.Context, id string) (model.FoodEntry, error) {
	current, ok := e.store.Get(id)
	if !ok {
		return model.FoodEntry{}, fmt.Errorf("item %q: %w", id, common.ErrNotFound)
	}

	e.store.Remove(ctx, id)
	e.logger.Info("removed item", "id", id, "name", current.Name)
	return current, nil
}

// Resolve finds an entry by full id or by an unambiguous id prefix.
func (e *Engine) Resolve(ref string) (model.FoodEntry, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.FoodEntry{}, fmt.Errorf("empty id: %w", common.ErrNotFound)
	}
	if entry, ok := e.store.Get(ref); ok {
		return entry, nil
	}

	var matches []model.FoodEntry
	for _, item := range e.store.Items() {
		if strings.HasPrefix(item.ID, ref) {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.FoodEntry{}, fmt.Errorf("item %q: %w", ref, common.ErrNotFound)
	default:
		return model.FoodEntry{}, common.NewUserError(
			fmt.Sprintf("Id prefix %q matches %d items", ref, len(matches)),
			common.ErrNotFound)
	}
}

// LastSaveError reports the most recent persistence failure.
func (e *Engine) LastSaveError() error {
	return e.store.LastSaveError()
}
