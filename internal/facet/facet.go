// Package facet derives filter labels and category groupings from the inventory.
package facet

import (
	"slices"
	"sort"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// Built-in facets that are not categories.
const (
	All    = "All"
	Frozen = "Frozen"
)

// Group is a category bucket of entries.
type Group struct {
	Category model.Category
	Items    []model.FoodEntry
}

// AvailableFilters returns the facets that make sense for items: All first,
// Frozen when something is frozen, then the categories present in
// alphabetical order.
func AvailableFilters(items []model.FoodEntry) []string {
	filters := []string{All}

	seen := make(map[model.Category]struct{})
	hasFrozen := false
	for _, item := range items {
		if item.IsFrozen {
			hasFrozen = true
		}
		seen[categoryOf(item)] = struct{}{}
	}

	if hasFrozen {
		filters = append(filters, Frozen)
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)

	return append(filters, categories...)
}

// ApplyFilter returns the items matching facet. All returns items unchanged.
func ApplyFilter(items []model.FoodEntry, facet string) []model.FoodEntry {
	switch facet {
	case All:
		return items
	case Frozen:
		return filter(items, func(e model.FoodEntry) bool { return e.IsFrozen })
	default:
		return filter(items, func(e model.FoodEntry) bool { return string(categoryOf(e)) == facet })
	}
}

// IsValidFacet reports whether facet is among the available filters for items.
func IsValidFacet(items []model.FoodEntry, facet string) bool {
	return slices.Contains(AvailableFilters(items), facet)
}

// GroupByCategory buckets items by category. Buckets are sorted by category
// name and keep encounter order inside. Entries without a category go to Other.
func GroupByCategory(items []model.FoodEntry) []Group {
	buckets := make(map[model.Category][]model.FoodEntry)
	for _, item := range items {
		c := categoryOf(item)
		buckets[c] = append(buckets[c], item)
	}

	groups := make([]Group, 0, len(buckets))
	for c, entries := range buckets {
		groups = append(groups, Group{Category: c, Items: entries})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})

	return groups
}

func categoryOf(e model.FoodEntry) model.Category {
	if e.Category == "" {
		return model.CategoryOther
	}
	return e.Category
}

func filter(items []model.FoodEntry, keep func(model.FoodEntry) bool) []model.FoodEntry {
	out := make([]model.FoodEntry, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
