package markup

import (
	"fmt"
	"unicode/utf8"

	"wtg-telegram-bot/scraper"
)

// Comment length handling. The two dialects deliberately differ: Markdown
// trims any comment over 300 runes, HTML only acts past 1000, and both cut
// back to the same 297-rune prefix. Limits apply to sanitized text, so escape
// sequences count.
const (
	markdownCommentLimit = 300
	htmlCommentLimit     = 1000
	commentPrefixLen     = 297
)

// FormatResult renders a scrape result into the outgoing message body for
// the given dialect. All scraped fields are sanitized; the original URL is
// interpolated verbatim since it was validated before scraping. The output
// is deterministic: the same result always renders to the same string.
func FormatResult(res *scraper.Result, dialect Dialect) string {
	s := ForDialect(dialect)

	title := s.Sanitize(res.Game.Title)
	score := s.Sanitize(res.Game.Score)
	author := s.Sanitize(res.Comment.Author)
	date := s.Sanitize(res.Comment.Date)
	text := s.Sanitize(res.Comment.Text)

	if dialect == DialectMarkdownV2 {
		if utf8.RuneCountInString(text) > markdownCommentLimit {
			text = prefixRunes(text, commentPrefixLen) + `\.\.\.`
		}
		return fmt.Sprintf(
			"🎮 *%s*\n⭐ Score: %s/100\n👤 Comment by: %s \\- %s\n\n💬 %s\n\n🔗 [View original post](%s)",
			title, score, author, date, text, res.OriginalURL,
		)
	}

	if utf8.RuneCountInString(text) > htmlCommentLimit {
		text = prefixRunes(text, commentPrefixLen) + "..."
	}
	return fmt.Sprintf(
		"🎮 <b>%s</b>\n⭐ Score: %s/100\n👤 Comment by: %s - %s\n\n💬 %s\n\n🔗 <a href=\"%s\">View original post</a>",
		title, score, author, date, text, res.OriginalURL,
	)
}

func prefixRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
