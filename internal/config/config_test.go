package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTP.Port != "3001" {
		t.Errorf("port = %s, want 3001", cfg.HTTP.Port)
	}
	if cfg.Pacing.Reveal != 800*time.Millisecond {
		t.Errorf("reveal delay = %v, want 800ms", cfg.Pacing.Reveal)
	}
	if cfg.Pacing.BotThink != 1200*time.Millisecond {
		t.Errorf("bot think delay = %v, want 1200ms", cfg.Pacing.BotThink)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("REVEAL_DELAY_MS", "50")
	t.Setenv("BOT_THINK_DELAY_MS", "not-a-number")

	cfg := Load()
	if cfg.HTTP.Port != "9000" {
		t.Errorf("port = %s, want 9000", cfg.HTTP.Port)
	}
	if cfg.Pacing.Reveal != 50*time.Millisecond {
		t.Errorf("reveal delay = %v, want 50ms", cfg.Pacing.Reveal)
	}
	// Unparseable values fall back to the default.
	if cfg.Pacing.BotThink != 1200*time.Millisecond {
		t.Errorf("bot think delay = %v, want 1200ms", cfg.Pacing.BotThink)
	}
}
