package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

func TestSuggestionCache(t *testing.T) {
	cache := newSuggestionCache(10, time.Hour)
	milk := model.Suggestion{DaysToExpiry: 7, Category: model.CategoryDairy, Icon: "fa-cheese"}

	cache.set("Milk", false, milk)

	got, ok := cache.get("  milk ", false)
	assert.True(t, ok)
	assert.Equal(t, milk, got)

	_, ok = cache.get("milk", true)
	assert.False(t, ok, "frozen and refrigerated lookups are separate")

	cache.set("Peas", true, model.FallbackSuggestion(true))
	_, ok = cache.get("peas", true)
	assert.False(t, ok, "fallbacks are not cached")
	assert.Equal(t, 1, cache.len())

	cache.purge()
	assert.Equal(t, 0, cache.len())
}

func TestSuggestionCache_Expiry(t *testing.T) {
	cache := newSuggestionCache(10, 20*time.Millisecond)
	cache.set("bread", false, model.Suggestion{DaysToExpiry: 4, Category: model.CategoryBakery, Icon: "fa-bread-slice"})

	assert.Eventually(t, func() bool {
		_, ok := cache.get("bread", false)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "milk|fridge", cacheKey(" Milk ", false))
	assert.Equal(t, "milk|frozen", cacheKey("MILK", true))
}
