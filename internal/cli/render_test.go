package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
	"github.com/italianiroberto75-cyber/FRIGO/internal/facet"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/testutil"
)

var renderNow = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

func TestRenderView(t *testing.T) {
	view := engine.BuildView(testutil.BasicEntries(renderNow), facet.All, renderNow)

	var buf bytes.Buffer
	require.NoError(t, RenderView(&buf, view))
	out := buf.String()

	assert.Contains(t, out, "My Fridge")
	for _, want := range []string{"Milk", "Chicken", "Peas", "Bread", "Bakery", "Dairy", "expired 1 days ago", "expires in 2 days", "4 of 4 items"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Bakery ("), strings.Index(out, "Dairy ("), "groups are alphabetical")
}

func TestRenderView_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderView(&buf, engine.BuildView(nil, facet.All, renderNow)))
	assert.Contains(t, buf.String(), EmptyFridgeMessage)
}

func TestRenderCategories(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCategories(&buf))
	for _, c := range model.Categories {
		assert.Contains(t, buf.String(), string(c))
	}
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "🧀", Glyph("fa-cheese"))
	assert.Equal(t, Glyph(model.DefaultIcon), Glyph("fa-does-not-exist"))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", ShortID("12345678-aaaa"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewCLIPrompter(strings.NewReader(tt.input), &out)

			ok, err := p.Confirm(context.Background(), "Remove Milk?")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Contains(t, out.String(), "Remove Milk? [y/N]")
		})
	}
}

func TestPrompter_ProgressAndSummary(t *testing.T) {
	var out bytes.Buffer
	p := NewCLIPrompter(strings.NewReader(""), &out)

	p.Progress(1, 2)
	p.Progress(2, 2)
	p.ShowBatchSummary(&engine.BatchSummary{
		Added:         []engine.AddResult{{}, {}},
		FallbackCount: 1,
	})

	assert.Contains(t, out.String(), "Items added: 2")
	assert.Contains(t, out.String(), "Default shelf life used: 1")
}
