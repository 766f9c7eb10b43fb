package model

import (
	"testing"
	"time"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{input: "Dairy", want: CategoryDairy, ok: true},
		{input: "  dairy ", want: CategoryDairy, ok: true},
		{input: "LEFTOVERS", want: CategoryLeftovers, ok: true},
		{input: "Frozen", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, "fa-cheese", CategoryDairy.Icon())
	assert.Equal(t, "fa-fish-fins", CategoryFish.Icon())
	assert.Equal(t, DefaultIcon, CategoryOther.Icon())
	assert.Equal(t, DefaultIcon, Category("Snacks").Icon())

	for _, c := range Categories {
		assert.True(t, c.IsValid(), c)
		assert.NotEmpty(t, c.Icon(), c)
	}
	assert.Len(t, CategoryNames(), len(Categories))
}

func TestFoodEntryValidate(t *testing.T) {
	valid := FoodEntry{
		ID:         "id-1",
		Name:       "Milk",
		ExpiryDate: time.Now(),
		Category:   CategoryDairy,
		Icon:       "fa-cheese",
	}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = "   "
	assert.ErrorIs(t, noName.Validate(), common.ErrEmptyName)

	badCategory := valid
	badCategory.Category = "Snacks"
	assert.ErrorIs(t, badCategory.Validate(), common.ErrInvalidCategory)

	noID := valid
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), common.ErrInvalidEntry)
}

func TestEntryPatch(t *testing.T) {
	entry := FoodEntry{ID: "id-1", Name: "Milk", Category: CategoryDairy, Icon: "fa-cheese"}

	empty := EntryPatch{}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, entry, empty.Apply(entry))

	name := "Oat milk"
	category := CategoryBeverages
	patched := EntryPatch{Name: &name, Category: &category}.Apply(entry)
	assert.Equal(t, "Oat milk", patched.Name)
	assert.Equal(t, CategoryBeverages, patched.Category)
	assert.Equal(t, "fa-cheese", patched.Icon)
	assert.Equal(t, "Milk", entry.Name, "original entry must not change")
}

func TestFallbackSuggestion(t *testing.T) {
	assert.Equal(t, Suggestion{DaysToExpiry: 90, Category: CategoryOther, Icon: DefaultIcon, Fallback: true}, FallbackSuggestion(true))
	assert.Equal(t, Suggestion{DaysToExpiry: 5, Category: CategoryOther, Icon: DefaultIcon, Fallback: true}, FallbackSuggestion(false))
}
