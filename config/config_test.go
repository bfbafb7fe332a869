package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "SENTRY_DSN", "PORT", "DEBUG",
		"SCRAPE_TIMEOUT", "SCRAPE_MIN_DELAY", "SCRAPE_MAX_DELAY", "MESSAGE_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Health.Port != 10000 {
		t.Fatalf("unexpected default port: expected 10000, got %d", cfg.Health.Port)
	}
	if cfg.Scraper.Timeout != 10*time.Second {
		t.Fatalf("unexpected default timeout: got %v", cfg.Scraper.Timeout)
	}
	if cfg.Scraper.MinDelay != time.Second || cfg.Scraper.MaxDelay != 3*time.Second {
		t.Fatalf("unexpected default delays: got %v..%v", cfg.Scraper.MinDelay, cfg.Scraper.MaxDelay)
	}
	if cfg.Bot.MessageFormat != "html" {
		t.Fatalf("unexpected default message format: got %q", cfg.Bot.MessageFormat)
	}
	if cfg.Debug {
		t.Fatal("debug should default to false")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("SCRAPE_TIMEOUT", "25")
	t.Setenv("MESSAGE_FORMAT", "markdownv2")

	cfg := Load()

	if cfg.Telegram.Token != "123:abc" {
		t.Fatalf("unexpected token: got %q", cfg.Telegram.Token)
	}
	if cfg.Health.Port != 8080 {
		t.Fatalf("unexpected port: got %d", cfg.Health.Port)
	}
	if !cfg.Debug {
		t.Fatal("debug should be enabled")
	}
	if cfg.Scraper.Timeout != 25*time.Second {
		t.Fatalf("unexpected timeout: got %v", cfg.Scraper.Timeout)
	}
	if cfg.Bot.MessageFormat != "markdownv2" {
		t.Fatalf("unexpected message format: got %q", cfg.Bot.MessageFormat)
	}
}

func TestLoad_IgnoresUnparsablePort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if cfg := Load(); cfg.Health.Port != 10000 {
		t.Fatalf("unparsable port should keep the default, got %d", cfg.Health.Port)
	}
}
