package main

import (
	"log/slog"

	"github.com/italianiroberto75-cyber/FRIGO/internal/config"
	"github.com/italianiroberto75-cyber/FRIGO/internal/llm"
)

// createGateway builds the classifier gateway from configuration. A missing
// API key yields a gateway that always answers with the default shelf life.
func createGateway() (*llm.Gateway, error) {
	cfg, err := config.LoadLLMConfig(nil)
	if err != nil {
		return nil, err
	}

	slog.Debug("LLM configuration loaded",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"timeout", cfg.Timeout,
		"has_api_key", cfg.APIKey != "")

	return llm.New(cfg, slog.Default()), nil
}
