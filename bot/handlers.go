package bot

import (
	"bytes"
	"log/slog"

	"wtg-telegram-bot/links"
	"wtg-telegram-bot/markup"
	"wtg-telegram-bot/scraper"

	"github.com/getsentry/sentry-go"
	t "github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

const startMessage = "🎮 <b>WTG Bot</b> - Game Review Parser\r\n\r\n" +
	"Hello! I can parse links from wtg.com.ua and show you game information with comments.\r\n\r\n" +
	"Just send me a WTG comment link like:\r\n" +
	"<code>https://wtg.com.ua/game/game-name/comment/comment-id</code>\r\n\r\n" +
	"I'll extract:\r\n" +
	"• Game title and score\r\n" +
	"• Comment details\r\n" +
	"• Game image\r\n" +
	"• Link to original post\r\n\r\n" +
	"Type /help for more information."

const helpMessage = "🔧 <b>How to use WTG Bot:</b>\r\n\r\n" +
	"<b>Supported URLs:</b>\r\n" +
	"• <code>https://wtg.com.ua/game/*/comment/*</code>\r\n\r\n" +
	"<b>What I extract:</b>\r\n" +
	"• 🎮 Game title\r\n" +
	"• ⭐ Game score/rating\r\n" +
	"• 👤 Comment author & date\r\n" +
	"• 💬 Comment text\r\n" +
	"• 🖼️ Game cover image\r\n" +
	"• 🔗 Link to original post\r\n\r\n" +
	"<b>Commands:</b>\r\n" +
	"• /start - Welcome message\r\n" +
	"• /help - This help message\r\n\r\n" +
	"Just paste a WTG comment link and I'll do the rest!"

const processingMessage = "🔄 Processing WTG link..."

func (b *Bot) startHandler(ctx *th.Context, update t.Update) error {
	slog.Info("bot: /start")

	chatID := tu.ID(update.Message.Chat.ID)

	b.sendTyping(ctx, chatID)

	_, err := b.api.SendMessage(ctx, b.reply(*update.Message, tu.Message(
		chatID,
		startMessage,
	).WithParseMode("HTML")))
	if err != nil {
		slog.Error("bot: Cannot send a message", "error", err)
		sentry.CaptureException(err)

		b.trySendReplyError(ctx, *update.Message)
	}

	return nil
}

func (b *Bot) helpHandler(ctx *th.Context, update t.Update) error {
	slog.Info("bot: /help")

	chatID := tu.ID(update.Message.Chat.ID)

	b.sendTyping(ctx, chatID)

	_, err := b.api.SendMessage(ctx, b.reply(*update.Message, tu.Message(
		chatID,
		helpMessage,
	).WithParseMode("HTML")))
	if err != nil {
		slog.Error("bot: Cannot send a message", "error", err)
		sentry.CaptureException(err)

		b.trySendReplyError(ctx, *update.Message)
	}

	return nil
}

func (b *Bot) statsHandler(ctx *th.Context, update t.Update) error {
	slog.Info("bot: /stats")

	chatID := tu.ID(update.Message.Chat.ID)

	b.sendTyping(ctx, chatID)

	_, err := b.api.SendMessage(ctx, b.reply(*update.Message, tu.Message(
		chatID,
		"Current bot stats:\r\n"+
			"```json\r\n"+
			b.stats.String()+"\r\n"+
			"```",
	)).WithParseMode("Markdown"))
	if err != nil {
		slog.Error("bot: Cannot send a message", "error", err)
		sentry.CaptureException(err)

		b.trySendReplyError(ctx, *update.Message)
	}

	return nil
}

func (b *Bot) textMessageHandler(ctx *th.Context, update t.Update) error {
	slog.Debug("bot: /any-message")

	message := update.Message

	found := links.Extract(message.Text)
	if len(found) == 0 {
		slog.Debug("bot: /any-message", "info", "No review links in message. Skipping.")

		return nil
	}

	slog.Info("bot: /any-message", "type", "review-links", "links", len(found), "chat", message.Chat.ID)

	for range found {
		b.stats.LinkDetected()
	}

	if len(found) > MaxLinksPerMessage {
		found = found[:MaxLinksPerMessage]
	}

	for _, link := range found {
		b.processLink(ctx, message, link)
	}

	return nil
}

func (b *Bot) processLink(ctx *th.Context, message *t.Message, url string) {
	b.stats.LinkProcessed()

	slog.Info("bot: Processing review link", "url", url, "chat", message.Chat.ID)

	chatID := tu.ID(message.Chat.ID)

	if !links.IsValid(url) {
		slog.Error("bot: Review link failed validation", "url", url)

		_, _ = b.api.SendMessage(ctx, b.reply(*message, tu.Message(
			chatID,
			"❌ Invalid WTG URL format: "+url+"\r\n\r\n"+
				"Please use format: https://wtg.com.ua/game/*/comment/*",
		)))

		return
	}

	b.sendTyping(ctx, chatID)

	processing, err := b.api.SendMessage(ctx, b.reply(*message, tu.Message(
		chatID,
		processingMessage,
	)))
	if err != nil {
		slog.Error("bot: Cannot send processing message", "error", err)
		sentry.CaptureException(err)

		b.trySendReplyError(ctx, *message)

		return
	}

	result, err := b.scraper.Scrape(ctx, url)
	if err != nil {
		slog.Error("bot: Review extraction failed", "error", err, "url", url)
		sentry.CaptureException(err)

		b.stats.ScrapeFailure()

		b.editMessage(ctx, processing, "❌ Failed to extract data from: "+url+"\r\n\r\n"+
			"The page might be unavailable or the format has changed.", "")

		return
	}

	b.stats.ScrapeSuccess()

	b.sendResult(ctx, message, processing, result)
}

// sendResult delivers the formatted review: photo with caption when the cover
// image is downloadable, otherwise the processing placeholder becomes the reply.
func (b *Bot) sendResult(ctx *th.Context, message *t.Message, processing *t.Message, result *scraper.Result) {
	text := markup.FormatResult(result, b.dialect)

	slog.Debug("bot: Formatted review message", "text", text)

	parseMode := b.dialect.ParseMode()

	if result.Game.ImageURL != "" {
		image := b.scraper.DownloadImage(ctx, result.Game.ImageURL)
		if image != nil {
			photo := tu.Photo(
				tu.ID(message.Chat.ID),
				tu.File(tu.NameReader(bytes.NewReader(image), "cover.jpg")),
			).WithCaption(text).WithParseMode(parseMode).WithReplyParameters(&t.ReplyParameters{
				MessageID: message.MessageID,
			})

			_, err := b.api.SendPhoto(ctx, photo)
			if err == nil {
				b.stats.ImageDelivered()
				b.deleteMessage(ctx, processing)

				return
			}

			slog.Error("bot: Cannot send photo, falling back to text", "error", err)
			sentry.CaptureException(err)
		}
	}

	b.editMessage(ctx, processing, text, parseMode)
}
