package links

import "regexp"

// Comment permalinks on wtg.com.ua look like
// https://wtg.com.ua/game/<slug>/comment/<id> where the id is a lowercase
// hex-and-dash token. Matching is case-insensitive so pasted links survive
// client-side capitalization.
var (
	linkPattern  = regexp.MustCompile(`(?i)https://wtg\.com\.ua/game/[^/]+/comment/[a-f0-9\-]+`)
	validPattern = regexp.MustCompile(`(?i)^https://wtg\.com\.ua/game/[^/]+/comment/[a-f0-9\-]+$`)
)

// Extract returns every wtg.com.ua comment link found in text, in encounter
// order. Duplicates are kept as-is, matches never overlap. A text without
// links yields an empty result.
func Extract(text string) []string {
	return linkPattern.FindAllString(text, -1)
}

// IsValid reports whether url is exactly one comment link: no query string,
// no fragment and no trailing path segments.
func IsValid(url string) bool {
	return validPattern.MatchString(url)
}
