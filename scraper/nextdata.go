package scraper

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Next.js pages embed their state under this query key prefix; the game slug
// lives in the query's data payload.
const gameDataQueryPrefix = "getGameDataBySlug"

// maxNextDataNodes bounds the generic payload walk so a pathological page
// cannot keep the scraper spinning.
const maxNextDataNodes = 10000

// gameSlugFromDocument digs the game slug out of the __NEXT_DATA__ script
// payload. It first follows the known Next.js state path, then falls back to
// a bounded walk over the whole payload. Returns "" when the page carries no
// payload or no slug.
func gameSlugFromDocument(doc *goquery.Document) string {
	raw := doc.Find(`script#__NEXT_DATA__`).First().Text()
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		slog.Debug("scraper: cannot decode __NEXT_DATA__ payload", "error", err)
		return ""
	}

	if slug := slugFromStateQueries(payload); slug != "" {
		return slug
	}
	return findGameSlug(payload)
}

// slugFromStateQueries walks props.pageProps.initialState.api.queries and
// returns the slug of the first game data query that has one.
func slugFromStateQueries(payload any) string {
	queries := childMap(payload, "props", "pageProps", "initialState", "api", "queries")
	for key, value := range queries {
		if !strings.HasPrefix(key, gameDataQueryPrefix) {
			continue
		}
		query, ok := value.(map[string]any)
		if !ok {
			continue
		}
		data, ok := query["data"].(map[string]any)
		if !ok {
			continue
		}
		if slug := asString(data["game_slug"]); slug != "" {
			return slug
		}
	}
	return ""
}

// childMap descends through nested objects along the given keys, returning
// nil as soon as the path breaks.
func childMap(payload any, keys ...string) map[string]any {
	current, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range keys {
		current, ok = current[key].(map[string]any)
		if !ok {
			return nil
		}
	}
	return current
}

// findGameSlug walks the decoded payload depth-first looking for any object
// with a non-empty game_slug. The walk is iterative and bounded, so neither
// deep nesting nor huge payloads can blow the stack or spin forever.
func findGameSlug(payload any) string {
	stack := []any{payload}
	visited := 0
	for len(stack) > 0 {
		visited++
		if visited > maxNextDataNodes {
			return ""
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := node.(type) {
		case map[string]any:
			if slug := asString(v["game_slug"]); slug != "" {
				return slug
			}
			for _, child := range v {
				stack = append(stack, child)
			}
		case []any:
			for _, item := range v {
				stack = append(stack, item)
			}
		}
	}
	return ""
}

// asString renders a decoded JSON scalar as a string; slugs occasionally
// arrive as numbers.
func asString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}
