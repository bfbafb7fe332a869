package markup

import "strings"

// Dialect selects which Telegram formatting mode outgoing messages use.
type Dialect string

const (
	DialectMarkdownV2 Dialect = "MarkdownV2"
	DialectHTML       Dialect = "HTML"
)

// ParseMode returns the Telegram Bot API parse_mode value for the dialect.
func (d Dialect) ParseMode() string {
	return string(d)
}

// Sanitizer escapes scraped text so it renders literally when interpolated
// into a message of one dialect. Scraped fragments arrive with arbitrary
// indentation and newlines, so implementations also collapse whitespace runs
// into single spaces and trim the ends.
type Sanitizer interface {
	Sanitize(text string) string
}

// ForDialect returns the sanitizer matching the dialect. Unknown values get
// the HTML sanitizer, which is also the default outgoing parse mode.
func ForDialect(d Dialect) Sanitizer {
	if d == DialectMarkdownV2 {
		return NewTgMarkdownV2Sanitizer()
	}
	return NewTgHTMLSanitizer()
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
