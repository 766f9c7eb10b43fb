// Package inventory holds the food collection and the rules for changing it.
package inventory

import (
	"fmt"
	"sort"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/facet"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// DefaultFacet is the facet selected when nothing else is.
const DefaultFacet = facet.All

// State is the complete application state.
type State struct {
	Facet     string
	EditingID string
	Items     []model.FoodEntry
}

// NewState returns the state with items sorted by expiry.
func NewState(items []model.FoodEntry) State {
	return State{
		Items: sortByExpiry(cloneItems(items)),
		Facet: DefaultFacet,
	}
}

// Command is a state transition.
type Command interface {
	isCommand()
}

// AddItem appends an entry. Invalid entries and taken ids are rejected.
type AddItem struct {
	Entry model.FoodEntry
}

// RemoveItem deletes the entry with the given id.
type RemoveItem struct {
	ID string
}

// UpdateItem merges Patch into the entry with the given id and closes the
// edit form. A patch that would make the entry invalid is not applied.
type UpdateItem struct {
	Patch model.EntryPatch
	ID    string
}

// SelectFacet changes the active filter.
type SelectFacet struct {
	Facet string
}

// StartEdit opens the edit form for an entry.
type StartEdit struct {
	ID string
}

// CancelEdit closes the edit form.
type CancelEdit struct{}

func (AddItem) isCommand()     {}
func (RemoveItem) isCommand()  {}
func (UpdateItem) isCommand()  {}
func (SelectFacet) isCommand() {}
func (StartEdit) isCommand()   {}
func (CancelEdit) isCommand()  {}

// Reduce applies cmd to s and returns the new state. s is never modified.
func Reduce(s State, cmd Command) State {
	switch c := cmd.(type) {
	case AddItem:
		if checkAdd(s.Items, c.Entry) != nil {
			return s
		}
		items := append(cloneItems(s.Items), c.Entry)
		s.Items = sortByExpiry(items)

	case RemoveItem:
		items := make([]model.FoodEntry, 0, len(s.Items))
		for _, item := range s.Items {
			if item.ID != c.ID {
				items = append(items, item)
			}
		}
		s.Items = items
		if s.EditingID == c.ID {
			s.EditingID = ""
		}

	case UpdateItem:
		items := cloneItems(s.Items)
		for i := range items {
			if items[i].ID == c.ID {
				if patched := c.Patch.Apply(items[i]); patched.Validate() == nil {
					items[i] = patched
				}
				break
			}
		}
		s.Items = sortByExpiry(items)
		s.EditingID = ""

	case SelectFacet:
		s.Facet = c.Facet

	case StartEdit:
		s.EditingID = c.ID

	case CancelEdit:
		s.EditingID = ""
	}

	return s
}

// checkAdd reports why entry cannot join items, or nil.
func checkAdd(items []model.FoodEntry, entry model.FoodEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	for _, item := range items {
		if item.ID == entry.ID {
			return fmt.Errorf("%w: %q", common.ErrDuplicateID, entry.ID)
		}
	}
	return nil
}

// itemsChanged reports whether cmd can touch the item collection.
func itemsChanged(cmd Command) bool {
	switch cmd.(type) {
	case AddItem, RemoveItem, UpdateItem:
		return true
	default:
		return false
	}
}

func cloneItems(items []model.FoodEntry) []model.FoodEntry {
	out := make([]model.FoodEntry, len(items))
	copy(out, items)
	return out
}

// sortByExpiry sorts in place, keeping insertion order for equal dates.
func sortByExpiry(items []model.FoodEntry) []model.FoodEntry {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpiryDate.Before(items[j].ExpiryDate)
	})
	return items
}
