package scraper

import (
	"context"
	"log/slog"
	"strings"

	"github.com/getsentry/sentry-go"
)

// DownloadImage fetches the game cover so it can be attached to the outgoing
// message. It returns nil when the URL is empty, the request fails or the
// response does not carry an image content type; the caller then degrades to
// a text-only message.
func (s *Scraper) DownloadImage(ctx context.Context, imageURL string) []byte {
	if imageURL == "" {
		return nil
	}

	slog.Info("scraper: downloading image", "url", imageURL)

	resp, err := s.client.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		slog.Error("scraper: image download failed", "url", imageURL, "error", err)
		sentry.CaptureException(err)
		return nil
	}
	if resp.IsError() {
		slog.Error("scraper: image download returned error status", "url", imageURL, "status", resp.StatusCode())
		return nil
	}

	contentType := resp.Header().Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		slog.Warn("scraper: url does not serve an image", "url", imageURL, "content_type", contentType)
		return nil
	}

	return resp.Body()
}
