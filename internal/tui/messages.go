package tui

import (
	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// itemAddedMsg reports the end of an add request.
type itemAddedMsg struct {
	err    error
	result engine.AddResult
}

// itemEditedMsg reports the end of an edit.
type itemEditedMsg struct {
	err   error
	entry model.FoodEntry
}

// itemRemovedMsg reports the end of a removal.
type itemRemovedMsg struct {
	err   error
	entry model.FoodEntry
}
