package bot

import (
	"context"
	"strings"

	t "github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// commandForThisBot matches bare commands ("/start") and commands addressed to
// this bot ("/start@wtg_bot"), so commands meant for other bots in a group chat
// fall through to the text handler instead.
func (b *Bot) commandForThisBot() th.Predicate {
	return func(_ context.Context, update t.Update) bool {
		if update.Message == nil {
			return false
		}

		return b.isCommandAddressedToMe(update.Message.Text)
	}
}

func (b *Bot) isCommandAddressedToMe(text string) bool {
	matches := th.CommandRegexp.FindStringSubmatch(text)
	if len(matches) != th.CommandMatchGroupsLen {
		return false
	}

	addressedUsername := matches[th.CommandMatchBotUsernameGroup]
	if addressedUsername == "" {
		return true
	}

	if b.me.Username == "" {
		return false
	}

	return strings.EqualFold(addressedUsername, b.me.Username)
}
