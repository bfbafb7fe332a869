package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Review API of the WTG backend. One comment is addressed by its sharing id
// plus the game slug.
const defaultAPIURL = "https://wtg.com.ua/api/backlog/user_review/user"

// Placeholders for comment fields the API leaves blank.
const (
	reviewTextUnavailable = "Review text not available"
	dateUnknown           = "Unknown Date"
)

// apiReview is one record of the user_reviews payload. User stays raw JSON:
// the field is served either as a plain username string or as a nested user
// object, and both shapes are passed through as-is.
type apiReview struct {
	User      json.RawMessage `json:"user"`
	Text      string          `json:"text"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// fetchCommentFromAPI asks the review API for a single comment. Any network,
// status or decoding problem yields nil so the caller can fall back to
// parsing the page HTML.
func (s *Scraper) fetchCommentFromAPI(ctx context.Context, commentID, gameSlug string) *CommentInfo {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sharing_id": commentID,
			"game_slug":  gameSlug,
			"page":       "1",
			"per_page":   "1",
		}).
		Get(s.apiURL)
	if err != nil {
		slog.Error("scraper: comment API request failed", "comment_id", commentID, "error", err)
		sentry.CaptureException(err)
		return nil
	}
	if resp.IsError() {
		slog.Error("scraper: comment API returned error status", "comment_id", commentID, "status", resp.StatusCode())
		return nil
	}

	var payload struct {
		UserReviews json.RawMessage `json:"user_reviews"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		slog.Error("scraper: cannot decode comment API response", "comment_id", commentID, "error", err)
		sentry.CaptureException(err)
		return nil
	}

	review, ok := selectReview(payload.UserReviews)
	if !ok {
		slog.Warn("scraper: comment API returned no review data", "comment_id", commentID)
		return nil
	}

	text := review.Text
	if text == "" {
		text = reviewTextUnavailable
	}

	date := review.CreatedAt
	if date == "" {
		date = review.UpdatedAt
	}
	if date == "" {
		date = dateUnknown
	}

	comment := &CommentInfo{
		Author:    authorString(review.User),
		Date:      normalizeDate(date),
		Text:      text,
		CommentID: commentID,
	}
	slog.Info("scraper: comment extracted from API",
		"comment_id", commentID,
		"author", comment.Author,
		"date", comment.Date,
		"text_length", len(comment.Text))
	return comment
}

// selectReview picks the review record out of the user_reviews value. The
// API serves it either as a list, where the first element wins, or as a
// single object. Empty lists, empty objects, null and unexpected shapes all
// count as "no data".
func selectReview(raw json.RawMessage) (apiReview, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return apiReview{}, false
	}

	switch trimmed[0] {
	case '[':
		var list []apiReview
		if err := json.Unmarshal(trimmed, &list); err != nil || len(list) == 0 {
			return apiReview{}, false
		}
		return list[0], true
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil || len(probe) == 0 {
			return apiReview{}, false
		}
		var review apiReview
		if err := json.Unmarshal(trimmed, &review); err != nil {
			return apiReview{}, false
		}
		return review, true
	default:
		return apiReview{}, false
	}
}

// authorString keeps the API user value in whatever shape it arrived: plain
// strings are unwrapped, anything else (commonly a nested user object) stays
// as compact JSON text. A missing field renders as an empty object.
func authorString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "{}"
	}
	if string(trimmed) == "null" {
		return "null"
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// normalizeDate rewrites ISO-8601 timestamps to DD.MM.YYYY. Values without
// the "T" marker, and timestamps no layout can parse, come back unchanged.
func normalizeDate(date string) string {
	if !strings.Contains(date, "T") {
		return date
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return date
}
