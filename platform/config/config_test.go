package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetHTTPAddr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.GetHTTPAddr())
	}
	if cfg.GetSessionTTL() != 30*time.Minute {
		t.Fatalf("unexpected ttl %v", cfg.GetSessionTTL())
	}
	if cfg.GetRateLimitRPS() != 20 || cfg.GetRateLimitBurst() != 40 {
		t.Fatalf("unexpected rate limits %v/%d", cfg.GetRateLimitRPS(), cfg.GetRateLimitBurst())
	}
	if cfg.GetRedisURL() != "" {
		t.Fatalf("expected no redis url, got %q", cfg.GetRedisURL())
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without SESSION_SECRET")
	}
}

func TestLoadWildcardOriginsAndCredentials(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, *")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when wildcard origins allow credentials")
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable SESSION_TTL")
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected split %q", got)
	}
}
