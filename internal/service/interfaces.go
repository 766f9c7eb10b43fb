// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// KeyValueStore persists opaque values under string keys.
type KeyValueStore interface {
	// Get returns the value stored under key, or storage.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Suggester proposes shelf life, category and icon for a food item.
// Implementations never fail; they answer with the fallback instead.
type Suggester interface {
	Suggest(ctx context.Context, name string, isFrozen bool) model.Suggestion
}
