package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/inventory"
	"github.com/italianiroberto75-cyber/FRIGO/internal/llm"
)

// Viper keys.
const (
	KeyDatabasePath    = "database.path"
	KeyStorageKey      = "storage.key"
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyLLMProvider     = "llm.provider"
	KeyLLMModel        = "llm.model"
	KeyLLMBaseURL      = "llm.base_url"
	KeyLLMTemperature  = "llm.temperature"
	KeyLLMMaxTokens    = "llm.max_tokens"
	KeyLLMTimeout      = "llm.timeout"
	KeyLLMCacheTTL     = "llm.cache_ttl"
	KeyLLMCacheSize    = "llm.cache_size"
	KeyGeminiAPIKey    = "llm.gemini_api_key"
	KeyOpenAIAPIKey    = "llm.openai_api_key"
	KeyAnthropicAPIKey = "llm.anthropic_api_key"
	KeyUITheme         = "ui.theme"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath())
	v.SetDefault(KeyStorageKey, inventory.DefaultKey)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLLMProvider, llm.ProviderGemini)
	v.SetDefault(KeyLLMTemperature, llm.DefaultTemperature)
	v.SetDefault(KeyLLMMaxTokens, llm.DefaultMaxTokens)
	v.SetDefault(KeyLLMTimeout, llm.DefaultTimeout)
	v.SetDefault(KeyLLMCacheTTL, llm.DefaultCacheTTL)
	v.SetDefault(KeyLLMCacheSize, llm.DefaultCacheSize)
	v.SetDefault(KeyUITheme, "default")
}

// StorageConfig locates the snapshot.
type StorageConfig struct {
	DatabasePath string
	Key          string
}

// LoadStorageConfig reads the database settings. A nil v uses the global
// viper instance.
func LoadStorageConfig(v *viper.Viper) (StorageConfig, error) {
	v = orGlobal(v)

	cfg := StorageConfig{
		DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
		Key:          strings.TrimSpace(v.GetString(KeyStorageKey)),
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultDatabasePath()
	}
	if cfg.Key == "" {
		cfg.Key = inventory.DefaultKey
	}

	return cfg, nil
}

// LoadLLMConfig loads classifier configuration. It follows this precedence:
// 1. Viper configuration (from config file or FRIDGE_ env vars)
// 2. Provider environment variables (GEMINI_API_KEY, API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY)
// 3. Default values
//
// A missing API key is not an error; the gateway then answers with fallbacks.
func LoadLLMConfig(v *viper.Viper) (llm.Config, error) {
	v = orGlobal(v)

	cfg := llm.Config{
		Provider:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLLMProvider))),
		Model:       v.GetString(KeyLLMModel),
		BaseURL:     v.GetString(KeyLLMBaseURL),
		Temperature: v.GetFloat64(KeyLLMTemperature),
		MaxTokens:   v.GetInt(KeyLLMMaxTokens),
		Timeout:     v.GetDuration(KeyLLMTimeout),
		CacheTTL:    v.GetDuration(KeyLLMCacheTTL),
		CacheSize:   v.GetInt(KeyLLMCacheSize),
	}
	if cfg.Provider == "" {
		cfg.Provider = llm.ProviderGemini
	}

	switch cfg.Provider {
	case llm.ProviderGemini:
		cfg.APIKey = firstNonEmpty(v.GetString(KeyGeminiAPIKey), os.Getenv("GEMINI_API_KEY"), os.Getenv("API_KEY"))
	case llm.ProviderOpenAI:
		cfg.APIKey = firstNonEmpty(v.GetString(KeyOpenAIAPIKey), os.Getenv("OPENAI_API_KEY"))
	case llm.ProviderAnthropic:
		cfg.APIKey = firstNonEmpty(v.GetString(KeyAnthropicAPIKey), os.Getenv("ANTHROPIC_API_KEY"))
	default:
		return cfg, fmt.Errorf("%w: unsupported LLM provider %q", common.ErrInvalidConfig, cfg.Provider)
	}

	if err := validateLLM(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validateLLM(cfg llm.Config) error {
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("%w: llm.temperature must be between 0 and 2, got %v", common.ErrInvalidConfig, cfg.Temperature)
	}
	if cfg.MaxTokens < 0 {
		return fmt.Errorf("%w: llm.max_tokens must not be negative", common.ErrInvalidConfig)
	}
	if cfg.Timeout < 0 || cfg.CacheTTL < 0 {
		return fmt.Errorf("%w: durations must not be negative", common.ErrInvalidConfig)
	}
	if cfg.Timeout > 5*time.Minute {
		return fmt.Errorf("%w: llm.timeout %s is too long", common.ErrInvalidConfig, cfg.Timeout)
	}
	return nil
}

func orGlobal(v *viper.Viper) *viper.Viper {
	if v == nil {
		return viper.GetViper()
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
