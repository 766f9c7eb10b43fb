package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/llm"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("FRIDGE_TEST_DIR", "/tmp/fridge")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde", "~", home},
		{"tilde path", "~/data/fridge.db", filepath.Join(home, "data/fridge.db")},
		{"env var", "$FRIDGE_TEST_DIR/fridge.db", "/tmp/fridge/fridge.db"},
		{"absolute", "/var/lib/fridge.db", "/var/lib/fridge.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestLoadStorageConfig(t *testing.T) {
	v := newViper()
	cfg, err := LoadStorageConfig(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabasePath(), cfg.DatabasePath)
	assert.Equal(t, "foodItems", cfg.Key)

	v.Set(KeyDatabasePath, "/tmp/x.db")
	v.Set(KeyStorageKey, " pantry ")
	cfg, err = LoadStorageConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	assert.Equal(t, "pantry", cfg.Key)
}

func TestLoadLLMConfig_Defaults(t *testing.T) {
	clearKeyEnv(t)

	cfg, err := LoadLLMConfig(newViper())
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Empty(t, cfg.APIKey)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 256, cfg.CacheSize)
}

func TestLoadLLMConfig_APIKeyPrecedence(t *testing.T) {
	tests := []struct {
		env      map[string]string
		viper    map[string]any
		name     string
		expected string
	}{
		{
			name:     "gemini env",
			env:      map[string]string{"GEMINI_API_KEY": "g-env", "API_KEY": "generic"},
			expected: "g-env",
		},
		{
			name:     "generic env",
			env:      map[string]string{"API_KEY": "generic"},
			expected: "generic",
		},
		{
			name:     "viper wins",
			env:      map[string]string{"GEMINI_API_KEY": "g-env"},
			viper:    map[string]any{KeyGeminiAPIKey: "g-viper"},
			expected: "g-viper",
		},
		{
			name:     "openai",
			env:      map[string]string{"OPENAI_API_KEY": "sk", "GEMINI_API_KEY": "g"},
			viper:    map[string]any{KeyLLMProvider: "OpenAI"},
			expected: "sk",
		},
		{
			name:     "anthropic",
			env:      map[string]string{"ANTHROPIC_API_KEY": "a"},
			viper:    map[string]any{KeyLLMProvider: "anthropic"},
			expected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKeyEnv(t)
			for k, val := range tt.env {
				t.Setenv(k, val)
			}
			v := newViper()
			for k, val := range tt.viper {
				v.Set(k, val)
			}

			cfg, err := LoadLLMConfig(v)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.APIKey)
		})
	}
}

func TestLoadLLMConfig_Invalid(t *testing.T) {
	tests := []struct {
		value any
		name  string
		key   string
	}{
		{"mystery", "unknown provider", KeyLLMProvider},
		{3.5, "temperature too high", KeyLLMTemperature},
		{-1, "negative tokens", KeyLLMMaxTokens},
		{"-5s", "negative timeout", KeyLLMTimeout},
		{"1h", "timeout too long", KeyLLMTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKeyEnv(t)
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := LoadLLMConfig(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}
