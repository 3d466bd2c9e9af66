package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "OPENAI_API_KEY", "OPENAI_BASE_URL", "FRONTEND_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Expected env 'development', got %q", cfg.Env)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Errorf("Expected default OpenAI base URL, got %q", cfg.OpenAIBaseURL)
	}
	if cfg.FrontendURL != "*" {
		t.Errorf("Expected frontend URL '*', got %q", cfg.FrontendURL)
	}
	if cfg.HasOpenAIKey() {
		t.Error("Expected no OpenAI key when OPENAI_API_KEY is unset")
	}
}

func TestLoad_MissingKeyDoesNotPanic(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Expected Load to tolerate a missing OpenAI key, got panic: %v", r)
		}
	}()

	Load()
}

func TestLoad_ReadsOpenAISettings(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1/")

	cfg := Load()

	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("Expected trimmed key, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.OpenAIBaseURL != "http://localhost:9999/v1" {
		t.Errorf("Expected trailing slash trimmed, got %q", cfg.OpenAIBaseURL)
	}
	if !cfg.HasOpenAIKey() {
		t.Error("Expected HasOpenAIKey to be true")
	}
}
