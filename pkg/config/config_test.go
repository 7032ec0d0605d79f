package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvOpenAIAPIKey, EnvOpenAIBaseURL, EnvOpenAIModel,
		EnvWeatherAPIKey, EnvWeatherBaseURL, EnvDebug, EnvConfigPath,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.Model != DefaultModel {
		t.Fatalf("expected default model %q, got %q", DefaultModel, cfg.LLM.Model)
	}
	if cfg.Weather.BaseURL != DefaultWeatherBaseURL {
		t.Fatalf("expected default weather base URL, got %q", cfg.Weather.BaseURL)
	}
	if cfg.Debug {
		t.Fatal("expected debug to default to false")
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "chat-tools.yaml")
	data := "llm:\n" +
		"  api_key: ${TEST_LLM_KEY}\n" +
		"  model: file-model\n" +
		"weather:\n" +
		"  api_key: file-weather-key\n" +
		"debug: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("TEST_LLM_KEY", "expanded-key")
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvOpenAIModel, "env-model")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.APIKey != "expanded-key" {
		t.Fatalf("expected ${TEST_LLM_KEY} to expand, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != "env-model" {
		t.Fatalf("expected environment model to win over file, got %q", cfg.LLM.Model)
	}
	if cfg.Weather.APIKey != "file-weather-key" {
		t.Fatalf("unexpected weather key: %q", cfg.Weather.APIKey)
	}
	if !cfg.Debug {
		t.Fatal("expected debug enabled from file")
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadDebugFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDebug, "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Debug {
		t.Fatal("expected debug enabled via environment")
	}
}

func TestNormalizeTrimsAndDefaults(t *testing.T) {
	cfg := Normalize(Config{
		LLM:     LLMConfig{APIKey: "  key  ", Model: "   "},
		Weather: WeatherConfig{BaseURL: " "},
	})
	if cfg.LLM.APIKey != "key" {
		t.Fatalf("expected trimmed key, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != DefaultModel {
		t.Fatalf("expected default model, got %q", cfg.LLM.Model)
	}
	if cfg.Weather.BaseURL != DefaultWeatherBaseURL {
		t.Fatalf("expected default weather base URL, got %q", cfg.Weather.BaseURL)
	}
}
