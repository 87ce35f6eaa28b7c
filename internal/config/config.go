// Package config loads moodmate settings from built-in defaults, an optional
// YAML file and the environment, in that order of precedence.
package config

import (
	"time"
)

// Config is the full application configuration.
type Config struct {
	Spotify   SpotifyConfig   `koanf:"spotify"`
	Ollama    OllamaConfig    `koanf:"ollama"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`

	// Presets, Queries and Keywords override the built-in mood tables. They
	// can only be set from the YAML file.
	Presets  map[string]PresetConfig `koanf:"presets"`
	Queries  map[string]QueryConfig  `koanf:"queries"`
	Keywords []KeywordConfig         `koanf:"keywords" validate:"dive"`
}

// SpotifyConfig configures the catalog client.
type SpotifyConfig struct {
	ClientID          string        `koanf:"client_id"`
	ClientSecret      string        `koanf:"client_secret"`
	BaseURL           string        `koanf:"base_url" validate:"required,url"`
	TokenURL          string        `koanf:"token_url" validate:"required,url"`
	Timeout           time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxRetries        int           `koanf:"max_retries" validate:"gte=0,lte=10"`
	RetryBackoff      time.Duration `koanf:"retry_backoff" validate:"gt=0"`
	Market            string        `koanf:"market" validate:"required,len=2"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gte=0"`
}

// HasCredentials reports whether both client credentials are set.
func (s SpotifyConfig) HasCredentials() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// OllamaConfig configures the language-model client.
type OllamaConfig struct {
	Host        string        `koanf:"host" validate:"required,url"`
	Model       string        `koanf:"model" validate:"required"`
	Temperature float64       `koanf:"temperature" validate:"gte=0,lte=2"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
}

// RecommendConfig tunes the recommendation resolver.
type RecommendConfig struct {
	Limit       int `koanf:"limit" validate:"gte=1,lte=50"`
	SeedArtists int `koanf:"seed_artists" validate:"gte=1,lte=5"`
}

// ServerConfig configures `moodmate serve`.
type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// LoggingConfig configures internal/logging.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// PresetConfig overrides one bucket's fallback preset.
type PresetConfig struct {
	Energy     float64  `koanf:"energy"`
	Valence    float64  `koanf:"valence"`
	SeedGenres []string `koanf:"seed_genres"`
}

// QueryConfig overrides one bucket's search queries. Empty fields keep the default.
type QueryConfig struct {
	ArtistQuery string `koanf:"artist_query"`
	TrackQuery  string `koanf:"track_query"`
}

// KeywordConfig is one ordered heuristic rule.
type KeywordConfig struct {
	Bucket   string   `koanf:"bucket" validate:"required"`
	Keywords []string `koanf:"keywords" validate:"required,min=1"`
}

func defaultConfig() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			BaseURL:      "https://api.spotify.com/v1",
			TokenURL:     "https://accounts.spotify.com/api/token",
			Timeout:      15 * time.Second,
			MaxRetries:   3,
			RetryBackoff: 500 * time.Millisecond,
			Market:       "US",
		},
		Ollama: OllamaConfig{
			Host:        "http://localhost:11434",
			Model:       "llama3:8b",
			Temperature: 0.3,
			Timeout:     60 * time.Second,
		},
		Recommend: RecommendConfig{
			Limit:       10,
			SeedArtists: 3,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
