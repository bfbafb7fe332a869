package markup

import "strings"

// Every character Telegram treats as markup in Markdown V2, plus the escape
// character itself: https://core.telegram.org/bots/api#markdownv2-style
var tgMarkdownV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", `\_`,
	"*", `\*`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"~", `\~`,
	"`", "\\`",
	">", `\>`,
	"#", `\#`,
	"+", `\+`,
	"-", `\-`,
	"=", `\=`,
	"|", `\|`,
	"{", `\{`,
	"}", `\}`,
	".", `\.`,
	"!", `\!`,
)

// NewTgMarkdownV2Sanitizer returns a Sanitizer for Telegram Markdown V2.
// Unlike entity-preserving escapers it escapes every special character, so
// markup-looking sequences inside scraped text never become formatting.
func NewTgMarkdownV2Sanitizer() Sanitizer {
	return tgMarkdownV2Sanitizer{}
}

type tgMarkdownV2Sanitizer struct{}

func (s tgMarkdownV2Sanitizer) Sanitize(text string) string {
	return tgMarkdownV2Replacer.Replace(collapseWhitespace(text))
}
