package bot

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	t "github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

func (b *Bot) reply(originalMessage t.Message, newMessage *t.SendMessageParams) *t.SendMessageParams {
	return newMessage.WithReplyParameters(&t.ReplyParameters{
		MessageID: originalMessage.MessageID,
	})
}

func (b *Bot) sendTyping(ctx context.Context, chatId t.ChatID) {
	slog.Debug("bot: Setting 'typing' chat action")

	err := b.api.SendChatAction(ctx, tu.ChatAction(chatId, "typing"))
	if err != nil {
		slog.Error("bot: Cannot set chat action", "error", err)
		sentry.CaptureException(err)
	}
}

func (b *Bot) trySendReplyError(ctx context.Context, message t.Message) {
	if ctx == nil {
		ctx = b.ctx
	}
	_, _ = b.api.SendMessage(ctx, b.reply(message, tu.Message(
		tu.ID(message.Chat.ID),
		"Error occurred while trying to send reply.",
	)))
}

// editMessage rewrites a previously sent message in place. An empty parseMode
// sends plain text.
func (b *Bot) editMessage(ctx context.Context, message *t.Message, text, parseMode string) {
	if message == nil {
		return
	}

	_, err := b.api.EditMessageText(ctx, &t.EditMessageTextParams{
		ChatID:    tu.ID(message.Chat.ID),
		MessageID: message.MessageID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		slog.Error("bot: Cannot edit message", "error", err, "message_id", message.MessageID)
		sentry.CaptureException(err)
	}
}

func (b *Bot) deleteMessage(ctx context.Context, message *t.Message) {
	if message == nil {
		return
	}

	err := b.api.DeleteMessage(ctx, &t.DeleteMessageParams{
		ChatID:    tu.ID(message.Chat.ID),
		MessageID: message.MessageID,
	})
	if err != nil {
		slog.Error("bot: Cannot delete message", "error", err, "message_id", message.MessageID)
		sentry.CaptureException(err)
	}
}
