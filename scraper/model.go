package scraper

// GameInfo holds the game fields extracted from a comment page. Score keeps
// the "N/A" sentinel when no numeric rating was found on the page. ImageURL
// is an absolute URL, or empty when no cover image was located.
type GameInfo struct {
	Title    string
	Score    string
	ImageURL string
}

// CommentInfo holds a single user comment. CommentID is the URL segment
// after "/comment/", verbatim. Date is either normalized to DD.MM.YYYY or
// whatever string the source provided when normalization was impossible.
// Fields that could not be extracted carry human-readable placeholders
// rather than empty strings.
type CommentInfo struct {
	Author    string
	Date      string
	Text      string
	CommentID string
}

// Result is the assembled outcome of scraping one comment URL. OriginalURL
// is always the exact URL the scrape was asked for.
type Result struct {
	Game        GameInfo
	Comment     CommentInfo
	OriginalURL string
}
