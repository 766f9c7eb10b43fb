// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
)

// Fallback expiry durations used when no suggestion is available.
const (
	FallbackDaysFrozen       = 90
	FallbackDaysRefrigerated = 5
)

// FoodEntry is a single item stored in the fridge or freezer.
type FoodEntry struct {
	ExpiryDate time.Time `json:"expiryDate"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   Category  `json:"category"`
	Icon       string    `json:"icon"`
	IsFrozen   bool      `json:"isFrozen"`
}

// Validate checks the entry invariants that must hold before it is stored.
func (e FoodEntry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("%w: missing id", common.ErrInvalidEntry)
	}
	if strings.TrimSpace(e.Name) == "" {
		return common.ErrEmptyName
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidCategory, e.Category)
	}
	return nil
}

// EntryPatch carries the user-editable fields of an entry. Nil fields are
// left untouched.
type EntryPatch struct {
	Name     *string
	Category *Category
	Icon     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Icon == nil
}

// Apply returns a copy of e with the patch merged in.
func (p EntryPatch) Apply(e FoodEntry) FoodEntry {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Icon != nil {
		e.Icon = *p.Icon
	}
	return e
}

// Suggestion is the shelf-life estimate for a food item.
type Suggestion struct {
	Category     Category `json:"category"`
	Icon         string   `json:"icon"`
	DaysToExpiry int      `json:"daysToExpiry"`
	Fallback     bool     `json:"-"`
}

// FallbackSuggestion is the fixed answer used when the classifier is
// unavailable or returns unusable data.
func FallbackSuggestion(isFrozen bool) Suggestion {
	days := FallbackDaysRefrigerated
	if isFrozen {
		days = FallbackDaysFrozen
	}
	return Suggestion{
		DaysToExpiry: days,
		Category:     CategoryOther,
		Icon:         DefaultIcon,
		Fallback:     true,
	}
}
