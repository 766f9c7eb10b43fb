package llm

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// Default cache settings.
const (
	DefaultCacheTTL  = 24 * time.Hour
	DefaultCacheSize = 256
)

// suggestionCache keeps recent successful suggestions keyed by normalized
// name and storage mode. The underlying LRU is safe for concurrent use.
type suggestionCache struct {
	lru *expirable.LRU[string, model.Suggestion]
}

// newSuggestionCache creates a cache holding at most size entries for ttl.
func newSuggestionCache(size int, ttl time.Duration) *suggestionCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &suggestionCache{
		lru: expirable.NewLRU[string, model.Suggestion](size, nil, ttl),
	}
}

func cacheKey(name string, isFrozen bool) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if isFrozen {
		return key + "|frozen"
	}
	return key + "|fridge"
}

func (c *suggestionCache) get(name string, isFrozen bool) (model.Suggestion, bool) {
	return c.lru.Get(cacheKey(name, isFrozen))
}

// set stores a suggestion. Fallback suggestions are never cached so that a
// transient outage does not stick.
func (c *suggestionCache) set(name string, isFrozen bool, s model.Suggestion) {
	if s.Fallback {
		return
	}
	c.lru.Add(cacheKey(name, isFrozen), s)
}

func (c *suggestionCache) len() int {
	return c.lru.Len()
}

func (c *suggestionCache) purge() {
	c.lru.Purge()
}
