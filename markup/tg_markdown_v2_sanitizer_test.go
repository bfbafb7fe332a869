package markup

import "testing"

func TestTgMarkdownV2Sanitizer_EscapesSpecialChars(t *testing.T) {
	s := NewTgMarkdownV2Sanitizer()
	input := `Score: 9/10 - "great" (really)! #1 [sic]`
	expected := `Score: 9/10 \- "great" \(really\)\! \#1 \[sic\]`
	got := s.Sanitize(input)
	if got != expected {
		t.Fatalf("unexpected sanitized text:\nexpected: %q\nactual:   %q", expected, got)
	}
}

func TestTgMarkdownV2Sanitizer_MarkupRendersLiterally(t *testing.T) {
	s := NewTgMarkdownV2Sanitizer()
	input := "*bold* _italic_ `code` [link](https://example.com)"
	expected := "\\*bold\\* \\_italic\\_ \\`code\\` \\[link\\]\\(https://example\\.com\\)"
	got := s.Sanitize(input)
	if got != expected {
		t.Fatalf("unexpected sanitized text:\nexpected: %q\nactual:   %q", expected, got)
	}
}

func TestTgMarkdownV2Sanitizer_EscapesBackslash(t *testing.T) {
	s := NewTgMarkdownV2Sanitizer()
	input := `a\_b`
	expected := `a\\\_b`
	got := s.Sanitize(input)
	if got != expected {
		t.Fatalf("unexpected sanitized text:\nexpected: %q\nactual:   %q", expected, got)
	}
}

func TestTgMarkdownV2Sanitizer_CollapsesWhitespace(t *testing.T) {
	s := NewTgMarkdownV2Sanitizer()
	input := "  first\n\n\tsecond   third "
	expected := "first second third"
	got := s.Sanitize(input)
	if got != expected {
		t.Fatalf("unexpected sanitized text:\nexpected: %q\nactual:   %q", expected, got)
	}
}

func TestTgMarkdownV2Sanitizer_EmptyInput(t *testing.T) {
	s := NewTgMarkdownV2Sanitizer()
	if got := s.Sanitize(""); got != "" {
		t.Fatalf("unexpected sanitized text: expected empty, got %q", got)
	}
}
