package main

import (
	"strings"
	"sync"

	"github.com/ewilliams-labs/moodmate/internal/adapters/ollama"
	"github.com/ewilliams-labs/moodmate/internal/adapters/spotify"
	"github.com/ewilliams-labs/moodmate/internal/config"
	"github.com/ewilliams-labs/moodmate/internal/core/services"
	"github.com/ewilliams-labs/moodmate/internal/logging"
)

type rootFlags struct {
	config   string
	model    string
	logLevel string
	json     bool
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once, applies flag overrides and
// initializes logging.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if m := strings.TrimSpace(c.flags.model); m != "" {
			cfg.Ollama.Model = m
		}
		if l := strings.TrimSpace(c.flags.logLevel); l != "" {
			cfg.Logging.Level = l
		}
		logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
		c.config = cfg
	})
	return c.config, c.configErr
}

// orchestrator builds the service graph from the loaded configuration.
func (c *commandContext) orchestrator() (*services.Orchestrator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	presets, err := cfg.PresetTable()
	if err != nil {
		return nil, err
	}
	queries, err := cfg.QueryTable()
	if err != nil {
		return nil, err
	}
	rules, err := cfg.KeywordRules()
	if err != nil {
		return nil, err
	}

	model := ollama.NewClient(ollama.Config{
		BaseURL: cfg.Ollama.Host,
		Model:   cfg.Ollama.Model,
		Timeout: cfg.Ollama.Timeout,
	})
	catalog := spotify.Factory(spotify.Config{
		ClientID:          cfg.Spotify.ClientID,
		ClientSecret:      cfg.Spotify.ClientSecret,
		BaseURL:           cfg.Spotify.BaseURL,
		TokenURL:          cfg.Spotify.TokenURL,
		Timeout:           cfg.Spotify.Timeout,
		MaxRetries:        cfg.Spotify.MaxRetries,
		RetryBackoff:      cfg.Spotify.RetryBackoff,
		RequestsPerSecond: cfg.Spotify.RequestsPerSecond,
	})

	temperature := cfg.Ollama.Temperature
	return services.NewOrchestrator(model, catalog, services.Options{
		Presets:      &presets,
		Queries:      &queries,
		Rules:        rules,
		Temperature:  &temperature,
		SeedArtists:  cfg.Recommend.SeedArtists,
		Market:       cfg.Spotify.Market,
		DefaultLimit: cfg.Recommend.Limit,
	}), nil
}

func (c *commandContext) jsonOutput() bool {
	return c.flags.json
}
