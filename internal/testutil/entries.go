package testutil

import (
	"fmt"
	"time"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// EntryBuilder builds food entries relative to a fixed point in time.
type EntryBuilder struct {
	now     time.Time
	entries []model.FoodEntry
}

// NewEntryBuilder starts a builder anchored at now.
func NewEntryBuilder(now time.Time) *EntryBuilder {
	return &EntryBuilder{now: now}
}

// Add appends a refrigerated entry expiring days after now.
func (b *EntryBuilder) Add(name string, category model.Category, days int) *EntryBuilder {
	return b.add(name, category, days, false)
}

// AddFrozen appends a frozen entry expiring days after now.
func (b *EntryBuilder) AddFrozen(name string, category model.Category, days int) *EntryBuilder {
	return b.add(name, category, days, true)
}

func (b *EntryBuilder) add(name string, category model.Category, days int, frozen bool) *EntryBuilder {
	b.entries = append(b.entries, model.FoodEntry{
		ID:         fmt.Sprintf("item-%d", len(b.entries)+1),
		Name:       name,
		Category:   category,
		Icon:       category.Icon(),
		ExpiryDate: b.now.AddDate(0, 0, days),
		IsFrozen:   frozen,
	})
	return b
}

// Build returns the entries in insertion order.
func (b *EntryBuilder) Build() []model.FoodEntry {
	out := make([]model.FoodEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// BasicEntries is a small mixed fridge used across tests: Milk (Dairy, +7),
// Chicken (Meat, -1), Peas (Vegetable, frozen, +120) and Bread (Bakery, +2).
func BasicEntries(now time.Time) []model.FoodEntry {
	return NewEntryBuilder(now).
		Add("Milk", model.CategoryDairy, 7).
		Add("Chicken", model.CategoryMeat, -1).
		AddFrozen("Peas", model.CategoryVegetable, 120).
		Add("Bread", model.CategoryBakery, 2).
		Build()
}
