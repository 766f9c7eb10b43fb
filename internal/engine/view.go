package engine

import (
	"time"

	"github.com/italianiroberto75-cyber/FRIGO/internal/expiry"
	"github.com/italianiroberto75-cyber/FRIGO/internal/facet"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// View is everything a screen needs to render the fridge.
type View struct {
	Active string
	Facets []string
	Groups []GroupView
	// Total counts all items, Shown those left after filtering.
	Total int
	Shown int
}

// GroupView is one category section.
type GroupView struct {
	Category model.Category
	Items    []ItemView
}

// ItemView is an entry with its current status.
type ItemView struct {
	Entry  model.FoodEntry
	Status expiry.Status
}

// IsEmpty reports whether the fridge holds nothing at all.
func (v View) IsEmpty() bool {
	return v.Total == 0
}

// View builds the grouped, annotated listing for the selected facet. An
// unknown facet falls back to All.
func (e *Engine) View(selected string) View {
	return BuildView(e.store.Items(), selected, e.now())
}

// BuildView is View over an explicit item list.
func BuildView(items []model.FoodEntry, selected string, now time.Time) View {
	if !facet.IsValidFacet(items, selected) {
		selected = facet.All
	}

	filtered := facet.ApplyFilter(items, selected)
	groups := facet.GroupByCategory(filtered)

	view := View{
		Active: selected,
		Facets: facet.AvailableFilters(items),
		Groups: make([]GroupView, 0, len(groups)),
		Total:  len(items),
		Shown:  len(filtered),
	}

	for _, g := range groups {
		gv := GroupView{Category: g.Category, Items: make([]ItemView, 0, len(g.Items))}
		for _, item := range g.Items {
			gv.Items = append(gv.Items, ItemView{
				Entry:  item,
				Status: expiry.Classify(item.ExpiryDate, item.IsFrozen, now),
			})
		}
		view.Groups = append(view.Groups, gv)
	}

	return view
}
