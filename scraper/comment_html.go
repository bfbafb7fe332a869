package scraper

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Placeholders for comment fields the page markup does not expose.
const (
	authorUnknown          = "Unknown User"
	commentUnavailable     = "Comment content not available"
	commentTextUnavailable = "Comment text not available"
)

// A text candidate has to be longer than this to count as the comment body;
// anything shorter is usually a label or a counter.
const minCommentTextLen = 10

// maxFallbackTextLen caps the whole-container text used as a last resort.
const maxFallbackTextLen = 500

var (
	commentContainerSelectors = []string{
		".comment",
		".user-comment",
		`[class*="comment"]`,
	}
	authorSelectors = []string{
		".author",
		".username",
		".user-name",
		".comment-author",
		`[class*="author"]`,
		`[class*="user"]`,
	}
	dateSelectors = []string{
		".date",
		".timestamp",
		".comment-date",
		"time",
		"[datetime]",
		`[class*="date"]`,
		`[class*="time"]`,
	}
	commentTextSelectors = []string{
		".comment-text",
		".comment-body",
		".text",
		".content",
		"p",
	}
)

// extractCommentFallback pulls the comment out of the page markup. It is the
// degraded path used when the review API yields nothing, and it never fails:
// when even the comment container cannot be located every field carries its
// placeholder.
func extractCommentFallback(doc *goquery.Document, commentID string) CommentInfo {
	container := findCommentContainer(doc, commentID)
	if container == nil {
		return CommentInfo{
			Author:    authorUnknown,
			Date:      dateUnknown,
			Text:      commentUnavailable,
			CommentID: commentID,
		}
	}

	return CommentInfo{
		Author:    extractCommentAuthor(container),
		Date:      extractCommentDate(container),
		Text:      extractCommentText(container),
		CommentID: commentID,
	}
}

// findCommentContainer locates the element holding the comment: first by
// exact id or data-id match against the comment id, then by the known
// comment classes, and finally by sweeping for any block element whose class
// mentions comments. Returns nil when nothing matches.
func findCommentContainer(doc *goquery.Document, commentID string) *goquery.Selection {
	if s := findByAttr(doc, "id", commentID); s != nil {
		return s
	}
	if s := findByAttr(doc, "data-id", commentID); s != nil {
		return s
	}
	for _, selector := range commentContainerSelectors {
		if s := doc.Find(selector).First(); s.Length() > 0 {
			return s
		}
	}

	var found *goquery.Selection
	doc.Find("div, article, section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if class, ok := s.Attr("class"); ok && strings.Contains(strings.ToLower(class), "comment") {
			found = s
			return false
		}
		return true
	})
	return found
}

// findByAttr returns the first element whose attribute equals value exactly.
// Comment ids come straight out of user-supplied URLs, so they are matched
// as plain strings instead of being interpolated into a selector.
func findByAttr(doc *goquery.Document, attr, value string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("[" + attr + "]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, ok := s.Attr(attr); ok && v == value {
			found = s
			return false
		}
		return true
	})
	return found
}

func extractCommentAuthor(container *goquery.Selection) string {
	for _, selector := range authorSelectors {
		if s := container.Find(selector).First(); s.Length() > 0 {
			return normSpace(s.Text())
		}
	}
	return authorUnknown
}

// extractCommentDate returns the first matched date element's text, except
// that a non-empty datetime attribute wins over the text.
func extractCommentDate(container *goquery.Selection) string {
	for _, selector := range dateSelectors {
		s := container.Find(selector).First()
		if s.Length() == 0 {
			continue
		}
		date := normSpace(s.Text())
		if dt, ok := s.Attr("datetime"); ok && dt != "" {
			date = dt
		}
		return date
	}
	return dateUnknown
}

// extractCommentText returns the first text candidate longer than the
// minimum; shorter matches are labels or counters and never win. When no
// selector yields substantial text the whole container text is used, capped
// at maxFallbackTextLen runes.
func extractCommentText(container *goquery.Selection) string {
	for _, selector := range commentTextSelectors {
		s := container.Find(selector).First()
		if s.Length() == 0 {
			continue
		}
		if candidate := normSpace(s.Text()); utf8.RuneCountInString(candidate) > minCommentTextLen {
			return candidate
		}
	}

	if all := normSpace(container.Text()); utf8.RuneCountInString(all) > minCommentTextLen {
		return prefixRunes(all, maxFallbackTextLen)
	}
	return commentTextUnavailable
}

func prefixRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
