package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SessionCookie != "styledecor_token" {
		t.Errorf("SessionCookie = %q, want styledecor_token", cfg.SessionCookie)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Errorf("APITimeout = %v, want 10s", cfg.APITimeout)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Errorf("RateLimitPerMin = %d, want 120", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigTrimsBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://api.local" {
		t.Errorf("APIBaseURL = %q, want trailing slash removed", cfg.APIBaseURL)
	}
}

func TestLoadConfigRequiresAPIBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() expected error for missing API_BASE_URL")
	}
}

func TestLoadConfigProductionRequiresSecureCookies(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SECURE_COOKIES", "false")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() expected error for insecure cookies in production")
	}

	t.Setenv("SECURE_COOKIES", "true")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies = false, want true")
	}
}
