package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ScoreUnknown is reported when no selector yields a numeric rating.
const ScoreUnknown = "N/A"

// Selector chains tried in order. The site has shipped several frontend
// revisions, so each chain covers the markup variants seen so far.
var (
	titleSelectors = []string{
		"h1.game-title",
		"h1",
		".game-header h1",
		".title",
		`[data-testid="game-title"]`,
	}
	scoreSelectors = []string{
		".score",
		".rating",
		".game-score",
		`[class*="score"]`,
		`[class*="rating"]`,
	}
	imageSelectors = []string{
		".game-image img",
		".poster img",
		".cover img",
		`img[alt*="game"]`,
		`img[src*="game"]`,
		".game-header img",
	}
)

var imageKeywords = []string{"game", "cover", "poster"}

var digitRun = regexp.MustCompile(`\d+`)

// extractGameInfo pulls title, score and cover image out of a parsed comment
// page. It never fails: missing pieces degrade to the slug-derived title,
// the "N/A" score and an empty image URL.
func extractGameInfo(doc *goquery.Document, pageURL string) GameInfo {
	return GameInfo{
		Title:    extractTitle(doc, pageURL),
		Score:    extractScore(doc),
		ImageURL: extractImageURL(doc, pageURL),
	}
}

// extractTitle returns the first non-empty text among the title selectors,
// falling back to a title derived from the URL slug.
func extractTitle(doc *goquery.Document, pageURL string) string {
	for _, selector := range titleSelectors {
		if title := normSpace(doc.Find(selector).First().Text()); title != "" {
			return title
		}
	}
	return titleFromSlug(pageURL)
}

// titleFromSlug turns the game slug of the URL into a readable title, e.g.
// "lost-in-random" becomes "Lost In Random".
func titleFromSlug(pageURL string) string {
	_, slug := splitCommentURL(pageURL)
	return cases.Title(language.Und).String(strings.ReplaceAll(slug, "-", " "))
}

// extractScore returns the first run of digits found in a score element's
// text. Elements that match a selector but carry no digits are skipped in
// favor of later selectors.
func extractScore(doc *goquery.Document) string {
	for _, selector := range scoreSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if digits := digitRun.FindString(sel.Text()); digits != "" {
			return digits
		}
	}
	return ScoreUnknown
}

// extractImageURL finds the game cover. Scoped selectors are tried first;
// when none yields a usable src or data-src, every img on the page is
// scanned for a URL mentioning one of the image keywords. The returned URL
// is resolved against the page URL.
func extractImageURL(doc *goquery.Document, pageURL string) string {
	for _, selector := range imageSelectors {
		if src := imageSrc(doc.Find(selector).First()); src != "" {
			return resolveURL(pageURL, src)
		}
	}

	var found string
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := imageSrc(img)
		if src == "" {
			return true
		}
		lower := strings.ToLower(src)
		for _, keyword := range imageKeywords {
			if strings.Contains(lower, keyword) {
				found = resolveURL(pageURL, src)
				return false
			}
		}
		return true
	})
	return found
}

// imageSrc returns the element's src attribute, or data-src for lazily
// loaded images, or "" when the selection is empty or has neither.
func imageSrc(img *goquery.Selection) string {
	if img.Length() == 0 {
		return ""
	}
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return src
	}
	return ""
}

// resolveURL resolves ref against base the way a browser would. Unparseable
// input is returned unchanged.
func resolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// normSpace collapses all whitespace runs in s into single spaces and trims
// the ends, mirroring how browsers render element text.
func normSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
