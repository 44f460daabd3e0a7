package config

import (
	"testing"
	"time"
)

func TestNewRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := New(); err == nil {
		t.Fatal("expected an error when DISCORD_TOKEN is unset")
	}
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CommandPrefix != "!" {
		t.Errorf("unexpected prefix %q", cfg.CommandPrefix)
	}
	if cfg.ReplyChance != 15 {
		t.Errorf("unexpected reply chance %d", cfg.ReplyChance)
	}
	if cfg.ReactCooldown() != 60*time.Second {
		t.Errorf("unexpected react cooldown %v", cfg.ReactCooldown())
	}
	if cfg.ReplyCooldown() != 120*time.Second {
		t.Errorf("unexpected reply cooldown %v", cfg.ReplyCooldown())
	}
	if len(cfg.ReactChannels) != 0 {
		t.Errorf("expected no react channels by default, got %v", cfg.ReactChannels)
	}
}

func TestNewParsesLists(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("REACT_CHANNELS", "111,222")
	t.Setenv("REACT_KEYWORDS", "beer,cheers")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.ReactChannels) != 2 || cfg.ReactChannels[0] != "111" || cfg.ReactChannels[1] != "222" {
		t.Errorf("unexpected channels %v", cfg.ReactChannels)
	}
	if len(cfg.ReactKeywords) != 2 || cfg.ReactKeywords[1] != "cheers" {
		t.Errorf("unexpected keywords %v", cfg.ReactKeywords)
	}
}
