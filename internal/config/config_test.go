package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("expected host %s, got %s", DefaultHost, cfg.Host)
	}
	if cfg.Gemini == nil {
		t.Fatal("gemini config is nil")
	}
	if cfg.Gemini.Model != DefaultGeminiModel {
		t.Errorf("expected model %s, got %s", DefaultGeminiModel, cfg.Gemini.Model)
	}
	if cfg.ObjectStore == nil {
		t.Fatal("object store config is nil")
	}
	if cfg.ObjectStore.EndpointURL != DefaultObjectStoreEndpoint {
		t.Errorf("expected endpoint %s, got %s", DefaultObjectStoreEndpoint, cfg.ObjectStore.EndpointURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ESTIMATE_PORT", "9090")
	t.Setenv("ESTIMATE_GEMINI_API_KEY", "test-key")
	t.Setenv("ESTIMATE_GEMINI_MAX_ATTEMPTS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("expected api key test-key, got %s", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.MaxAttempts != 3 {
		t.Errorf("expected max attempts 3, got %d", cfg.Gemini.MaxAttempts)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := LoadEnvFile("does-not-exist.env"); err != nil {
		t.Errorf("missing env file should not be an error, got %v", err)
	}
}
