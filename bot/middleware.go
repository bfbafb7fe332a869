package bot

import (
	"log/slog"

	t "github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

func (b *Bot) chatTypeStatsCounter(ctx *th.Context, update t.Update) error {
	message := update.Message

	if message == nil {
		slog.Info("chat-type-middleware: update has no message. skipping.")

		return ctx.Next(update)
	}

	slog.Info("chat-type-middleware: counting message chat type in stats", "type", message.Chat.Type)

	switch message.Chat.Type {
	case t.ChatTypeGroup, t.ChatTypeSupergroup:
		b.stats.GroupRequest()
	case t.ChatTypePrivate:
		b.stats.PrivateRequest()
	}

	return ctx.Next(update)
}
