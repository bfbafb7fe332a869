package scraper

import "testing"

func TestGameSlugFromDocument_StateQueries(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<script id="__NEXT_DATA__" type="application/json">
		{"props": {"pageProps": {"initialState": {"api": {"queries": {
			"getUserData(1)": {"data": {"id": 5}},
			"getGameDataBySlug(\"dredge\")": {"data": {"game_slug": "dredge", "title": "Dredge"}}
		}}}}}}
		</script>
	</body></html>`)

	if got := gameSlugFromDocument(doc); got != "dredge" {
		t.Fatalf("unexpected slug: expected %q, got %q", "dredge", got)
	}
}

func TestGameSlugFromDocument_GenericWalk(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<script id="__NEXT_DATA__" type="application/json">
		{"buildId": "x", "other": [{"nested": {"game_slug": "tunic"}}]}
		</script>
	</body></html>`)

	if got := gameSlugFromDocument(doc); got != "tunic" {
		t.Fatalf("unexpected slug: expected %q, got %q", "tunic", got)
	}
}

func TestGameSlugFromDocument_NumericSlug(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<script id="__NEXT_DATA__" type="application/json">
		{"data": {"game_slug": 4217}}
		</script>
	</body></html>`)

	if got := gameSlugFromDocument(doc); got != "4217" {
		t.Fatalf("unexpected slug: expected %q, got %q", "4217", got)
	}
}

func TestGameSlugFromDocument_MissingScript(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>static page</p></body></html>`)

	if got := gameSlugFromDocument(doc); got != "" {
		t.Fatalf("unexpected slug from page without payload: %q", got)
	}
}

func TestGameSlugFromDocument_BadJSON(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<script id="__NEXT_DATA__" type="application/json">{not json</script>
	</body></html>`)

	if got := gameSlugFromDocument(doc); got != "" {
		t.Fatalf("unexpected slug from broken payload: %q", got)
	}
}

// The generic walk gives up past its node bound instead of scanning
// arbitrarily large payloads.
func TestFindGameSlug_Bounded(t *testing.T) {
	items := make([]any, maxNextDataNodes+5)
	items[0] = map[string]any{"game_slug": "buried"}
	for i := 1; i < len(items); i++ {
		items[i] = map[string]any{}
	}

	if got := findGameSlug(items); got != "" {
		t.Fatalf("walk should stop at the node bound: got %q", got)
	}
}

func TestFindGameSlug_IgnoresEmptySlug(t *testing.T) {
	payload := map[string]any{"game_slug": ""}

	if got := findGameSlug(payload); got != "" {
		t.Fatalf("empty slug should not count: got %q", got)
	}
}
