package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/service"
)

// Default request settings.
const (
	DefaultTemperature = 0.2
	DefaultMaxTokens   = 256
	DefaultTimeout     = 15 * time.Second
)

// Config holds configuration for LLM clients and the gateway around them.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	CacheTTL    time.Duration
	CacheSize   int
}

// Gateway turns a food name into a Suggestion. It makes exactly one call per
// uncached lookup and never reports failure to Suggest callers.
type Gateway struct {
	client  Client
	cache   *suggestionCache
	logger  *slog.Logger
	timeout time.Duration
}

var _ service.Suggester = (*Gateway)(nil)

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = common.LoggerOrDefault(logger)
	}
}

// WithTimeout bounds each outbound call.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithCache replaces the default suggestion cache.
func WithCache(size int, ttl time.Duration) Option {
	return func(g *Gateway) {
		g.cache = newSuggestionCache(size, ttl)
	}
}

// NewGateway wraps client. A nil client is allowed; every lookup then
// resolves to the fallback.
func NewGateway(client Client, opts ...Option) *Gateway {
	g := &Gateway{
		client:  client,
		cache:   newSuggestionCache(DefaultCacheSize, DefaultCacheTTL),
		logger:  slog.Default(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New builds the provider client from cfg and wraps it. A missing API key or
// unknown provider is logged and leaves the gateway without a client.
func New(cfg Config, logger *slog.Logger) *Gateway {
	logger = common.LoggerOrDefault(logger)
	opts := []Option{
		WithLogger(logger),
		WithTimeout(cfg.Timeout),
		WithCache(cfg.CacheSize, cfg.CacheTTL),
	}

	client, err := NewClient(cfg)
	if err != nil {
		logger.Warn("classifier unavailable, using fallback suggestions",
			"provider", cfg.Provider,
			"error", err)
		return NewGateway(nil, opts...)
	}

	return NewGateway(client, opts...)
}

// HasClient reports whether a provider client is configured.
func (g *Gateway) HasClient() bool {
	return g.client != nil
}

// Suggest returns a suggestion for name, or the fallback when the lookup
// fails for any reason.
func (g *Gateway) Suggest(ctx context.Context, name string, isFrozen bool) model.Suggestion {
	suggestion, err := g.Classify(ctx, name, isFrozen)
	if err != nil {
		g.logger.Warn("classification failed, using fallback",
			"item", name,
			"frozen", isFrozen,
			"error", err)
		return model.FallbackSuggestion(isFrozen)
	}
	return suggestion
}

// Classify performs the lookup and reports why it failed.
func (g *Gateway) Classify(ctx context.Context, name string, isFrozen bool) (model.Suggestion, error) {
	if strings.TrimSpace(name) == "" {
		return model.Suggestion{}, common.ErrEmptyName
	}

	if cached, ok := g.cache.get(name, isFrozen); ok {
		g.logger.Debug("suggestion cache hit", "item", name, "frozen", isFrozen)
		return cached, nil
	}

	if g.client == nil {
		return model.Suggestion{}, common.ErrNoClient
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := g.client.Complete(callCtx, Request{
		System: systemPrompt,
		Prompt: buildPrompt(name, isFrozen),
		Schema: suggestionSchema(),
	})
	if err != nil {
		return model.Suggestion{}, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}

	suggestion, err := ParseSuggestion(content)
	if err != nil {
		return model.Suggestion{}, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}

	g.cache.set(name, isFrozen, suggestion)
	g.logger.Debug("classified item",
		"item", name,
		"frozen", isFrozen,
		"category", suggestion.Category,
		"days", suggestion.DaysToExpiry,
		"icon", suggestion.Icon)

	return suggestion, nil
}

// PurgeCache drops every cached suggestion.
func (g *Gateway) PurgeCache() {
	g.cache.purge()
}
