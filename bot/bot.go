package bot

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"wtg-telegram-bot/config"
	"wtg-telegram-bot/markup"
	"wtg-telegram-bot/scraper"
	"wtg-telegram-bot/stats"

	"github.com/getsentry/sentry-go"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

var (
	ErrGetMe          = errors.New("cannot retrieve api user")
	ErrUpdatesChannel = errors.New("cannot get updates channel")
	ErrHandlerInit    = errors.New("cannot initialize handler")
)

// MaxLinksPerMessage caps how many review links from a single message get processed.
const MaxLinksPerMessage = 3

type Bot struct {
	api     *telego.Bot
	scraper *scraper.Scraper
	stats   *stats.Stats
	dialect markup.Dialect
	me      botInfo

	ctx context.Context
}

func NewBot(api *telego.Bot, scr *scraper.Scraper, cfg config.BotConfig) *Bot {
	return &Bot{
		api:     api,
		scraper: scr,
		stats:   stats.NewStats(),
		dialect: dialectFromConfig(cfg),
		me:      botInfo{},

		ctx: context.Background(),
	}
}

func dialectFromConfig(cfg config.BotConfig) markup.Dialect {
	switch strings.ToLower(cfg.MessageFormat) {
	case "markdown", "markdownv2":
		return markup.DialectMarkdownV2
	default:
		return markup.DialectHTML
	}
}

func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx

	botUser, err := b.api.GetMe(ctx)
	if err != nil {
		slog.Error("bot: Cannot retrieve api user", "error", err)
		sentry.CaptureException(err)

		return ErrGetMe
	}

	b.me = botInfoFromUser(botUser)

	slog.Info("bot: Running api as", "id", b.me.ID, "username", b.me.Username, "name", b.me.FirstName, "is_bot", b.me.IsBot)
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category: "telegram-api",
		Message:  "Bot ID: " + strconv.FormatInt(b.me.ID, 10),
		Level:    sentry.LevelInfo,
	})

	updates, err := b.api.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		slog.Error("bot: Cannot get update channel", "error", err)
		sentry.CaptureException(err)

		return ErrUpdatesChannel
	}

	bh, err := th.NewBotHandler(b.api, updates)
	if err != nil {
		slog.Error("bot: Cannot initialize bot handler", "error", err)
		sentry.CaptureException(err)

		return ErrHandlerInit
	}

	defer func() { _ = bh.Stop() }()

	// Middlewares
	bh.Use(b.chatTypeStatsCounter)

	// Command handlers
	bh.Handle(b.startHandler, th.And(th.CommandEqual("start"), b.commandForThisBot()))
	bh.Handle(b.helpHandler, th.And(th.CommandEqual("help"), b.commandForThisBot()))
	bh.Handle(b.statsHandler, th.And(th.CommandEqual("stats"), b.commandForThisBot()))

	// Review links arrive as plain text
	bh.Handle(b.textMessageHandler, th.AnyMessageWithText())

	return bh.Start()
}
