package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/italianiroberto75-cyber/FRIGO/internal/expiry"
	"github.com/italianiroberto75-cyber/FRIGO/internal/facet"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/testutil"
)

func TestBuildView(t *testing.T) {
	items := testutil.BasicEntries(testNow)

	view := BuildView(items, facet.All, testNow)
	assert.Equal(t, facet.All, view.Active)
	assert.Equal(t, []string{"All", "Frozen", "Bakery", "Dairy", "Meat", "Vegetable"}, view.Facets)
	assert.Equal(t, 4, view.Total)
	assert.Equal(t, 4, view.Shown)
	require.Len(t, view.Groups, 4)
	assert.Equal(t, model.CategoryBakery, view.Groups[0].Category)

	byName := map[string]expiry.Status{}
	for _, g := range view.Groups {
		for _, item := range g.Items {
			byName[item.Entry.Name] = item.Status
		}
	}
	assert.Equal(t, expiry.SeverityExpired, byName["Chicken"].Severity)
	assert.Equal(t, "expired 1 days ago", byName["Chicken"].Text)
	assert.Equal(t, expiry.SeveritySoon, byName["Bread"].Severity)
	assert.Equal(t, expiry.SeverityFresh, byName["Milk"].Severity)
	assert.Equal(t, expiry.SeverityFrozen, byName["Peas"].Severity)
}

func TestBuildView_Filters(t *testing.T) {
	items := testutil.BasicEntries(testNow)

	frozen := BuildView(items, facet.Frozen, testNow)
	require.Len(t, frozen.Groups, 1)
	assert.Equal(t, "Peas", frozen.Groups[0].Items[0].Entry.Name)
	assert.Equal(t, 1, frozen.Shown)

	dairy := BuildView(items, "Dairy", testNow)
	assert.Equal(t, "Dairy", dairy.Active)
	assert.Equal(t, 1, dairy.Shown)
}

func TestBuildView_StaleFacetResets(t *testing.T) {
	items := testutil.BasicEntries(testNow)

	view := BuildView(items, "Fish", testNow)
	assert.Equal(t, facet.All, view.Active)
	assert.Equal(t, 4, view.Shown)
}

func TestBuildView_EveryFacetShowsItems(t *testing.T) {
	items := testutil.BasicEntries(testNow)

	for _, f := range facet.AvailableFilters(items) {
		t.Run(f, func(t *testing.T) {
			view := BuildView(items, f, testNow)
			assert.Equal(t, f, view.Active)
			assert.Positive(t, view.Shown)
		})
	}
}

func TestBuildView_Empty(t *testing.T) {
	view := BuildView(nil, facet.All, testNow)
	assert.True(t, view.IsEmpty())
	assert.Equal(t, []string{"All"}, view.Facets)
	assert.Empty(t, view.Groups)
}
