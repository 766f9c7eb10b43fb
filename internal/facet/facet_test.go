package facet

import (
	"testing"
	"time"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/stretchr/testify/assert"
)

func entry(id string, category model.Category, frozen bool) model.FoodEntry {
	return model.FoodEntry{
		ID:         id,
		Name:       id,
		Category:   category,
		Icon:       category.Icon(),
		IsFrozen:   frozen,
		ExpiryDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestAvailableFilters(t *testing.T) {
	tests := []struct {
		name  string
		items []model.FoodEntry
		want  []string
	}{
		{
			name:  "empty inventory",
			items: nil,
			want:  []string{All},
		},
		{
			name: "no frozen items",
			items: []model.FoodEntry{
				entry("milk", model.CategoryDairy, false),
				entry("apple", model.CategoryFruit, false),
				entry("yogurt", model.CategoryDairy, false),
			},
			want: []string{All, "Dairy", "Fruit"},
		},
		{
			name: "frozen item adds facet",
			items: []model.FoodEntry{
				entry("peas", model.CategoryVegetable, true),
				entry("bread", model.CategoryBakery, false),
			},
			want: []string{All, Frozen, "Bakery", "Vegetable"},
		},
		{
			name: "missing category shows as Other",
			items: []model.FoodEntry{
				entry("mystery", "", false),
			},
			want: []string{All, "Other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableFilters(tt.items))
		})
	}
}

func TestApplyFilter(t *testing.T) {
	items := []model.FoodEntry{
		entry("peas", model.CategoryVegetable, true),
		entry("milk", model.CategoryDairy, false),
		entry("salmon", model.CategoryFish, true),
		entry("carrot", model.CategoryVegetable, false),
	}

	t.Run("all passes everything in order", func(t *testing.T) {
		assert.Equal(t, items, ApplyFilter(items, All))
	})

	t.Run("frozen keeps exactly the frozen subset", func(t *testing.T) {
		got := ApplyFilter(items, Frozen)
		assert.Equal(t, []model.FoodEntry{items[0], items[2]}, got)
		for _, e := range got {
			assert.True(t, e.IsFrozen)
		}
	})

	t.Run("category matches exactly", func(t *testing.T) {
		assert.Equal(t, []model.FoodEntry{items[0], items[3]}, ApplyFilter(items, "Vegetable"))
		assert.Empty(t, ApplyFilter(items, "vegetable"))
		assert.Empty(t, ApplyFilter(items, "Meat"))
	})
}

func TestIsValidFacet(t *testing.T) {
	items := []model.FoodEntry{entry("milk", model.CategoryDairy, false)}

	assert.True(t, IsValidFacet(items, All))
	assert.True(t, IsValidFacet(items, "Dairy"))
	assert.False(t, IsValidFacet(items, Frozen))
	assert.False(t, IsValidFacet(items, "Fish"))
}

func TestGroupByCategory(t *testing.T) {
	items := []model.FoodEntry{
		entry("yogurt", model.CategoryDairy, false),
		entry("apple", model.CategoryFruit, false),
		entry("mystery", "", false),
		entry("milk", model.CategoryDairy, false),
		entry("nuts", model.CategoryOther, false),
	}

	groups := GroupByCategory(items)

	var categories []model.Category
	for _, g := range groups {
		categories = append(categories, g.Category)
	}
	assert.Equal(t, []model.Category{model.CategoryDairy, model.CategoryFruit, model.CategoryOther}, categories)

	assert.Equal(t, []model.FoodEntry{items[0], items[3]}, groups[0].Items, "encounter order inside a bucket")
	assert.Equal(t, []model.FoodEntry{items[2], items[4]}, groups[2].Items)

	assert.Empty(t, GroupByCategory(nil))
}
