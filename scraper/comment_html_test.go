package scraper

import (
	"strings"
	"testing"
)

func TestExtractCommentFallback_ByID(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div id="abc-123">
			<span class="author">Neo</span>
			<time datetime="2024-06-15">15 June</time>
			<p class="comment-text">This is a long enough comment text.</p>
		</div>
	</body></html>`)

	comment := extractCommentFallback(doc, "abc-123")

	if comment.Author != "Neo" {
		t.Fatalf("unexpected author: expected %q, got %q", "Neo", comment.Author)
	}
	if comment.Date != "2024-06-15" {
		t.Fatalf("datetime attribute should win over text: got %q", comment.Date)
	}
	if comment.Text != "This is a long enough comment text." {
		t.Fatalf("unexpected text: got %q", comment.Text)
	}
	if comment.CommentID != "abc-123" {
		t.Fatalf("unexpected comment id: got %q", comment.CommentID)
	}
}

func TestExtractCommentFallback_ByDataID(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div id="other"><p>unrelated block, long enough to matter</p></div>
		<div data-id="abc-123">
			<span class="username">Trinity</span>
			<p class="comment-body">Matched through the data-id attribute.</p>
		</div>
	</body></html>`)

	comment := extractCommentFallback(doc, "abc-123")

	if comment.Author != "Trinity" {
		t.Fatalf("unexpected author: expected %q, got %q", "Trinity", comment.Author)
	}
	if comment.Text != "Matched through the data-id attribute." {
		t.Fatalf("unexpected text: got %q", comment.Text)
	}
}

func TestExtractCommentFallback_CommentClass(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div class="comment">
			<span class="comment-author">Morpheus</span>
			<span class="comment-date">yesterday</span>
			<div class="content">Comment found by its class, not by id.</div>
		</div>
	</body></html>`)

	comment := extractCommentFallback(doc, "missing-id")

	if comment.Author != "Morpheus" {
		t.Fatalf("unexpected author: got %q", comment.Author)
	}
	if comment.Date != "yesterday" {
		t.Fatalf("unexpected date: got %q", comment.Date)
	}
	if comment.Text != "Comment found by its class, not by id." {
		t.Fatalf("unexpected text: got %q", comment.Text)
	}
}

// Class matching in the generic sweep is case-insensitive, unlike the CSS
// attribute selectors tried before it.
func TestExtractCommentFallback_GenericSweep(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<section class="UserComment">
			<span class="author">Smith</span>
			<p class="text">Found by sweeping block elements for classes.</p>
		</section>
	</body></html>`)

	comment := extractCommentFallback(doc, "missing-id")

	if comment.Author != "Smith" {
		t.Fatalf("unexpected author: got %q", comment.Author)
	}
	if comment.Text != "Found by sweeping block elements for classes." {
		t.Fatalf("unexpected text: got %q", comment.Text)
	}
}

func TestExtractCommentFallback_NothingFound(t *testing.T) {
	doc := parseDoc(t, `<html><body><h1>Game page without comments</h1></body></html>`)

	comment := extractCommentFallback(doc, "abc-123")

	if comment.Author != authorUnknown {
		t.Fatalf("unexpected author: expected %q, got %q", authorUnknown, comment.Author)
	}
	if comment.Date != dateUnknown {
		t.Fatalf("unexpected date: expected %q, got %q", dateUnknown, comment.Date)
	}
	if comment.Text != commentUnavailable {
		t.Fatalf("unexpected text: expected %q, got %q", commentUnavailable, comment.Text)
	}
	if comment.CommentID != "abc-123" {
		t.Fatalf("unexpected comment id: got %q", comment.CommentID)
	}
}

func TestExtractCommentText_SkipsShortCandidates(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div class="comment">
			<div class="comment-text">short</div>
			<div class="content">This candidate is clearly longer than ten characters.</div>
		</div>
	</body></html>`)

	comment := extractCommentFallback(doc, "x")

	if comment.Text != "This candidate is clearly longer than ten characters." {
		t.Fatalf("short candidate should never win: got %q", comment.Text)
	}
}

func TestExtractCommentText_ContainerFallbackTruncates(t *testing.T) {
	long := strings.Repeat("абв", 200)
	doc := parseDoc(t, `<html><body><div class="comment">`+long+`</div></body></html>`)

	comment := extractCommentFallback(doc, "x")

	want := string([]rune(long)[:500])
	if comment.Text != want {
		t.Fatalf("container text should be capped at 500 runes: got %d runes", len([]rune(comment.Text)))
	}
}

func TestExtractCommentText_NoSubstantialText(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="comment"><p>short</p></div></body></html>`)

	comment := extractCommentFallback(doc, "x")

	if comment.Text != commentTextUnavailable {
		t.Fatalf("unexpected text: expected %q, got %q", commentTextUnavailable, comment.Text)
	}
}

func TestExtractCommentDate_TextWhenNoDatetime(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div class="comment"><span class="date">two days ago</span></div>
	</body></html>`)

	comment := extractCommentFallback(doc, "x")

	if comment.Date != "two days ago" {
		t.Fatalf("unexpected date: got %q", comment.Date)
	}
}

func TestExtractCommentDate_EmptyDatetimeIgnored(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div class="comment"><time datetime="">15 June</time></div>
	</body></html>`)

	comment := extractCommentFallback(doc, "x")

	if comment.Date != "15 June" {
		t.Fatalf("empty datetime attribute should not win: got %q", comment.Date)
	}
}
