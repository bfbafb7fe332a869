package scraper

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/getsentry/sentry-go"
	"github.com/go-resty/resty/v2"
)

var (
	ErrPageFetch       = errors.New("comment page fetch failed")
	ErrGameInfoExtract = errors.New("game info extraction failed")
)

const defaultTimeout = 10 * time.Second

// The site serves a different, much leaner page to obvious bots, so the
// session advertises itself as a desktop browser. Accept-Encoding is left to
// the transport, which negotiates gzip and decompresses transparently.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// URL markers the comment id and game slug are carved out with.
const (
	gameMarker    = "/game/"
	commentMarker = "/comment/"
)

// Config tunes one scraper instance. The zero value disables the politeness
// delay, which is what tests want; the production configuration comes from
// the environment.
type Config struct {
	// APIURL overrides the review API endpoint. Empty means production.
	APIURL string
	// Timeout applies to every HTTP request. Zero means 10 seconds.
	Timeout time.Duration
	// MinDelay and MaxDelay bound the random pause before each page fetch.
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Scraper extracts game and comment data from wtg.com.ua. One instance is
// created per process and is safe for concurrent use; all requests share a
// single browser-like HTTP session.
type Scraper struct {
	client   *resty.Client
	apiURL   string
	minDelay time.Duration
	maxDelay time.Duration
}

func New(cfg Config) *Scraper {
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New()
	client.SetTimeout(cfg.Timeout)
	client.SetHeaders(browserHeaders)

	return &Scraper{
		client:   client,
		apiURL:   cfg.APIURL,
		minDelay: cfg.MinDelay,
		maxDelay: cfg.MaxDelay,
	}
}

// Scrape runs the extraction pipeline for one comment URL: fetch the page,
// pull the game info out of its markup, then ask the review API for the
// comment and fall back to page markup when the API has nothing. The returned
// error is one of the package sentinels; callers treat any error as "no
// result for this link".
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*Result, error) {
	slog.Info("scraper: scraping page", "url", pageURL)

	commentID, gameSlug := splitCommentURL(pageURL)
	slog.Debug("scraper: parsed comment URL", "comment_id", commentID, "game_slug", gameSlug)

	s.politenessDelay(ctx)

	resp, err := s.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		slog.Error("scraper: network error while fetching page", "url", pageURL, "error", err)
		sentry.CaptureException(err)
		return nil, ErrPageFetch
	}
	if resp.IsError() {
		slog.Error("scraper: page fetch returned error status", "url", pageURL, "status", resp.StatusCode())
		return nil, ErrPageFetch
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		slog.Error("scraper: cannot parse page", "url", pageURL, "error", err)
		sentry.CaptureException(err)
		return nil, ErrGameInfoExtract
	}

	if gameSlug == "" {
		// Degenerate URLs can carry an empty slug; the page payload still
		// knows which game it belongs to.
		gameSlug = gameSlugFromDocument(doc)
		slog.Debug("scraper: recovered game slug from page payload", "game_slug", gameSlug)
	}

	game := extractGameInfo(doc, pageURL)
	slog.Info("scraper: extracted game info",
		"title", game.Title,
		"score", game.Score,
		"has_image", game.ImageURL != "")

	comment := s.fetchCommentFromAPI(ctx, commentID, gameSlug)
	if comment == nil {
		slog.Warn("scraper: comment API yielded nothing, falling back to page markup", "comment_id", commentID)
		fallback := extractCommentFallback(doc, commentID)
		comment = &fallback
	}

	return &Result{
		Game:        game,
		Comment:     *comment,
		OriginalURL: pageURL,
	}, nil
}

// splitCommentURL carves the comment id and game slug out of a comment URL
// by plain string splitting, so even degenerate input yields something. The
// id is everything after the last "/comment/"; the slug sits between the
// last "/game/" and the following "/comment/".
func splitCommentURL(pageURL string) (commentID, gameSlug string) {
	commentID = pageURL
	if i := strings.LastIndex(pageURL, commentMarker); i >= 0 {
		commentID = pageURL[i+len(commentMarker):]
	}

	gameSlug = pageURL
	if i := strings.LastIndex(pageURL, gameMarker); i >= 0 {
		gameSlug = pageURL[i+len(gameMarker):]
	}
	if i := strings.Index(gameSlug, commentMarker); i >= 0 {
		gameSlug = gameSlug[:i]
	}
	return commentID, gameSlug
}

// politenessDelay sleeps for a random duration between MinDelay and MaxDelay
// before a page fetch, so bursts of links do not hammer the site. Context
// cancellation cuts the sleep short.
func (s *Scraper) politenessDelay(ctx context.Context) {
	delay := s.minDelay
	if span := s.maxDelay - s.minDelay; span > 0 {
		delay += rand.N(span)
	}
	if delay <= 0 {
		return
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
