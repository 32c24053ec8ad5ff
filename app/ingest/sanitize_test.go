package ingest

import (
	"strings"
	"testing"
)

func TestStripHTML(t *testing.T) {
	html := `<p>Chief Minister <b>inaugurates</b> bridge.</p><script>alert("x")</script><style>p{}</style>`
	got := StripHTML(html)
	if got != "Chief Minister inaugurates bridge." {
		t.Errorf("Unexpected stripped text: %q", got)
	}
}

func TestStripHTMLPlainText(t *testing.T) {
	got := StripHTML("Plain   text\n\twith  gaps")
	if got != "Plain text with gaps" {
		t.Errorf("Expected collapsed whitespace, got %q", got)
	}
}

func TestCleanContentFallsBackToTitle(t *testing.T) {
	got := CleanContent("<div></div>", "Fallback headline")
	if got != "Fallback headline" {
		t.Errorf("Expected title fallback, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", MaxContentRunes+200)
	got := Truncate(long, MaxContentRunes)
	if len([]rune(got)) != MaxContentRunes {
		t.Errorf("Expected %d runes, got %d", MaxContentRunes, len([]rune(got)))
	}

	// Rune-based, not byte-based
	hindi := strings.Repeat("क", 10)
	if got := Truncate(hindi, 5); len([]rune(got)) != 5 {
		t.Errorf("Expected 5 runes, got %d", len([]rune(got)))
	}

	if got := Truncate("short", 100); got != "short" {
		t.Errorf("Expected unchanged text, got %q", got)
	}
}
