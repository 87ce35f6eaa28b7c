package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when no path is given.
var DefaultConfigPaths = []string{
	"moodmate.yaml",
	"moodmate.yml",
}

// ConfigPathEnvVar names the config file when no path is given.
const ConfigPathEnvVar = "MOODMATE_CONFIG"

// envMappings maps environment variables, lower-cased, to config paths.
// Anything not listed is ignored.
var envMappings = map[string]string{
	"spotify_client_id":           "spotify.client_id",
	"spotify_client_secret":       "spotify.client_secret",
	"spotify_base_url":            "spotify.base_url",
	"spotify_token_url":           "spotify.token_url",
	"spotify_timeout":             "spotify.timeout",
	"spotify_max_retries":         "spotify.max_retries",
	"spotify_retry_backoff":       "spotify.retry_backoff",
	"spotify_market":              "spotify.market",
	"spotify_requests_per_second": "spotify.requests_per_second",

	"ollama_host":        "ollama.host",
	"ollama_model":       "ollama.model",
	"ollama_temperature": "ollama.temperature",
	"ollama_timeout":     "ollama.timeout",

	"moodmate_limit":        "recommend.limit",
	"moodmate_seed_artists": "recommend.seed_artists",

	"moodmate_addr":             "server.addr",
	"moodmate_shutdown_timeout": "server.shutdown_timeout",

	"log_level":  "logging.level",
	"log_format": "logging.format",
}

// Load reads a .env file if present, then layers defaults, the YAML file at
// path (or the first of DefaultConfigPaths found) and the environment.
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	configPath, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveConfigPath(path string) (string, error) {
	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
		return path, nil
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// envTransformFunc maps an environment variable to its config path, or to ""
// so koanf skips it.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
