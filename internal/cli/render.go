package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// EmptyFridgeMessage is shown instead of an empty listing.
const EmptyFridgeMessage = "Your fridge is empty. Add something with: fridge add <name>"

// ShortID returns the first eight characters of an id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RenderFacetBar renders the filters with the active one highlighted.
func RenderFacetBar(facets []string, active string) string {
	parts := make([]string, 0, len(facets))
	for _, f := range facets {
		if f == active {
			parts = append(parts, ActiveFacetStyle.Render(f))
		} else {
			parts = append(parts, FacetStyle.Render(f))
		}
	}
	return strings.Join(parts, " ")
}

// RenderItem renders one line of a listing.
func RenderItem(item engine.ItemView) string {
	frozen := ""
	if item.Entry.IsFrozen {
		frozen = " " + FrozenStyle.Render("❄")
	}

	return fmt.Sprintf("%s  %s %s%s  %s",
		SubtleStyle.Render(ShortID(item.Entry.ID)),
		Glyph(item.Entry.Icon),
		BoldStyle.Render(item.Entry.Name),
		frozen,
		SeverityStyle(item.Status.Severity).Render(Glyph(item.Status.Icon)+" "+item.Status.Text))
}

// RenderView writes a grouped listing.
func RenderView(w io.Writer, view engine.View) error {
	var b strings.Builder

	b.WriteString(FormatTitle("My Fridge"))
	b.WriteString("\n")

	switch {
	case view.IsEmpty():
		b.WriteString(SubtleStyle.Render(EmptyFridgeMessage))
		b.WriteString("\n")
	default:
		b.WriteString(RenderFacetBar(view.Facets, view.Active))
		b.WriteString("\n\n")

		for _, group := range view.Groups {
			b.WriteString(CategoryStyle.Render(fmt.Sprintf("%s %s (%d)", Glyph(group.Category.Icon()), group.Category, len(group.Items))))
			b.WriteString("\n")
			for _, item := range group.Items {
				b.WriteString("  " + RenderItem(item) + "\n")
			}
			b.WriteString("\n")
		}
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d of %d items", view.Shown, view.Total)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderCategories writes the category list with icons.
func RenderCategories(w io.Writer) error {
	var b strings.Builder
	b.WriteString(FormatTitle("Categories"))
	b.WriteString("\n")
	for _, c := range model.Categories {
		fmt.Fprintf(&b, "  %s %-10s %s\n", Glyph(c.Icon()), c, SubtleStyle.Render(c.Icon()))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
