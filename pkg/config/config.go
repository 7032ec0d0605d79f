// Package config loads runtime configuration from the environment and
// an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by Load. Environment values
// override the YAML file.
const (
	EnvOpenAIAPIKey   = "OPENAI_API_KEY"
	EnvOpenAIBaseURL  = "OPENAI_BASE_URL"
	EnvOpenAIModel    = "OPENAI_MODEL"
	EnvWeatherAPIKey  = "OPENWEATHER_API_KEY"
	EnvWeatherBaseURL = "OPENWEATHER_BASE_URL"
	EnvDebug          = "CHAT_TOOLS_DEBUG"
	EnvConfigPath     = "CHAT_TOOLS_CONFIG"
)

// Defaults applied by Normalize.
const (
	DefaultModel          = "gpt-4o-mini"
	DefaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	defaultConfigPath = "chat-tools.yaml"
)

// LLMConfig holds settings for the chat-completions backend.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// WeatherConfig holds settings for the weather provider.
type WeatherConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// Config holds all runtime configuration for the assistant.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Weather WeatherConfig `yaml:"weather"`
	Debug   bool          `yaml:"debug"`
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		LLM:     LLMConfig{Model: DefaultModel},
		Weather: WeatherConfig{BaseURL: DefaultWeatherBaseURL},
	}
}

// Load builds the configuration in three layers: the .env file (if
// present), then the optional YAML file, then environment variables,
// which win.
func Load() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path := strings.TrimSpace(os.Getenv(EnvConfigPath))
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	if err := loadFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)
	return Normalize(cfg), nil
}

// loadFile merges the YAML file at path into cfg. A missing file is an
// error only when the path was set explicitly.
func loadFile(cfg *Config, path string, explicit bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	// ${VAR} references in the file resolve against the environment.
	expanded := os.ExpandEnv(string(raw))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvOpenAIAPIKey); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv(EnvOpenAIBaseURL); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv(EnvOpenAIModel); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv(EnvWeatherAPIKey); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv(EnvWeatherBaseURL); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.LLM.APIKey = strings.TrimSpace(cfg.LLM.APIKey)
	cfg.LLM.BaseURL = strings.TrimSpace(cfg.LLM.BaseURL)
	cfg.LLM.Model = strings.TrimSpace(cfg.LLM.Model)
	cfg.Weather.APIKey = strings.TrimSpace(cfg.Weather.APIKey)
	cfg.Weather.BaseURL = strings.TrimSpace(cfg.Weather.BaseURL)

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = DefaultWeatherBaseURL
	}
	return cfg
}
