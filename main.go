package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wtg-telegram-bot/bot"
	"wtg-telegram-bot/config"
	"wtg-telegram-bot/health"
	"wtg-telegram-bot/scraper"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	tg "github.com/mymmrac/telego"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	setupLogger(cfg.Debug)

	if cfg.Telegram.Token == "" {
		slog.Error("main: TELEGRAM_BOT_TOKEN environment variable is required")
		os.Exit(1)
	}

	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:   cfg.Sentry.DSN,
			Debug: cfg.Debug,
		})
		if err != nil {
			slog.Error("main: Sentry initialization failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthServer := health.NewServer(fmt.Sprintf(":%d", cfg.Health.Port))
	go healthServer.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("main: Health server shutdown failed", "error", err)
		}
	}()

	scr := scraper.New(scraper.Config{
		Timeout:  cfg.Scraper.Timeout,
		MinDelay: cfg.Scraper.MinDelay,
		MaxDelay: cfg.Scraper.MaxDelay,
	})

	telegramApi, err := tg.NewBot(cfg.Telegram.Token, tg.WithLogger(bot.NewLogger("telego")))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	botService := bot.NewBot(telegramApi, scr, cfg.Bot)

	err = botService.Run(ctx)
	if err != nil {
		slog.Error("Running bot finished with an error", "error", err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
