package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PRICE_CACHE_TTL", "")
	t.Setenv("PRICE_CACHE_MAX_ENTRIES", "")
	t.Setenv("AGENT_CONFIG_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.PriceCacheTTL != 15*time.Minute {
		t.Errorf("expected 15m cache ttl, got %s", cfg.PriceCacheTTL)
	}
	if cfg.PriceCacheMaxEntries != 1024 {
		t.Errorf("expected 1024 entries, got %d", cfg.PriceCacheMaxEntries)
	}
	if cfg.AgentConfigDir != "configs/agents" {
		t.Errorf("unexpected agent config dir %q", cfg.AgentConfigDir)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PRICE_CACHE_TTL", "5m")
	t.Setenv("PRICE_CACHE_MAX_ENTRIES", "16")
	t.Setenv("AGENT_TIMEOUT", "bogus")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.PriceCacheTTL != 5*time.Minute {
		t.Errorf("expected 5m, got %s", cfg.PriceCacheTTL)
	}
	if cfg.PriceCacheMaxEntries != 16 {
		t.Errorf("expected 16, got %d", cfg.PriceCacheMaxEntries)
	}
	if cfg.AgentTimeout != 60*time.Second {
		t.Errorf("expected invalid timeout to fall back to 60s, got %s", cfg.AgentTimeout)
	}
	if Get() != cfg {
		t.Error("expected Get to return the last loaded config")
	}
}
