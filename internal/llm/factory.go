package llm

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Supported providers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NewClient creates a raw LLM client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderGemini, "":
		return newGeminiClient(cfg)
	case ProviderOpenAI:
		return newOpenAIClient(cfg)
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// minHTTPTimeout is the transport ceiling used for short call timeouts.
const minHTTPTimeout = 30 * time.Second

// httpTimeout keeps the transport ceiling above the per-call timeout so that
// the gateway's deadline is the one that fires.
func httpTimeout(callTimeout time.Duration) time.Duration {
	if ceiling := 2 * callTimeout; ceiling > minHTTPTimeout {
		return ceiling
	}
	return minHTTPTimeout
}

func newHTTPClient(callTimeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: httpTimeout(callTimeout),
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func withDefaults(cfg Config, model string) Config {
	if cfg.Model == "" {
		cfg.Model = model
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}
