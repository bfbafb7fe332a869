package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the root configuration structure
type Config struct {
	Telegram TelegramConfig
	Sentry   SentryConfig
	Scraper  ScraperConfig
	Bot      BotConfig
	Health   HealthConfig
	Debug    bool
}

// TelegramConfig contains configuration for the Telegram bot API
type TelegramConfig struct {
	Token string
}

// SentryConfig contains configuration for Sentry error tracking
type SentryConfig struct {
	DSN string
}

// ScraperConfig contains timeouts and the politeness delay bounds for the
// scraping pipeline
type ScraperConfig struct {
	Timeout  time.Duration
	MinDelay time.Duration
	MaxDelay time.Duration
}

// BotConfig contains configuration for bot behavior
type BotConfig struct {
	// MessageFormat selects the outgoing message dialect, "html" or
	// "markdownv2".
	MessageFormat string
}

// HealthConfig contains configuration for the health check endpoint
type HealthConfig struct {
	Port int
}

// Load creates a new Config instance populated from environment variables
func Load() *Config {
	port := 10000
	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	timeout := 10
	if toStr := os.Getenv("SCRAPE_TIMEOUT"); toStr != "" {
		if to, err := strconv.Atoi(toStr); err == nil {
			timeout = to
		}
	}

	minDelay := 1
	if delayStr := os.Getenv("SCRAPE_MIN_DELAY"); delayStr != "" {
		if delay, err := strconv.Atoi(delayStr); err == nil {
			minDelay = delay
		}
	}

	maxDelay := 3
	if delayStr := os.Getenv("SCRAPE_MAX_DELAY"); delayStr != "" {
		if delay, err := strconv.Atoi(delayStr); err == nil {
			maxDelay = delay
		}
	}

	debug := false
	if debugStr := os.Getenv("DEBUG"); debugStr != "" {
		debug = strings.EqualFold(debugStr, "true") || debugStr == "1"
	}

	return &Config{
		Telegram: TelegramConfig{
			Token: os.Getenv("TELEGRAM_BOT_TOKEN"),
		},
		Sentry: SentryConfig{
			DSN: os.Getenv("SENTRY_DSN"),
		},
		Scraper: ScraperConfig{
			Timeout:  time.Duration(timeout) * time.Second,
			MinDelay: time.Duration(minDelay) * time.Second,
			MaxDelay: time.Duration(maxDelay) * time.Second,
		},
		Bot: BotConfig{
			MessageFormat: getEnvOrDefault("MESSAGE_FORMAT", "html"),
		},
		Health: HealthConfig{
			Port: port,
		},
		Debug: debug,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
