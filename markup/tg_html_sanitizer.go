package markup

import "strings"

// Telegram HTML mode only recognizes a small tag subset, but any stray angle
// bracket still has to be escaped or the API rejects the message.
var tgHTMLReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// NewTgHTMLSanitizer returns a Sanitizer for Telegram HTML parse mode.
func NewTgHTMLSanitizer() Sanitizer {
	return tgHTMLSanitizer{}
}

type tgHTMLSanitizer struct{}

func (s tgHTMLSanitizer) Sanitize(text string) string {
	return tgHTMLReplacer.Replace(collapseWhitespace(text))
}
