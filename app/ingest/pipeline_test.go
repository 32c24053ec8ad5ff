package ingest

import (
	"strings"
	"testing"
)

func TestMakeSummary(t *testing.T) {
	// Tiny content degrades to a title-templated summary
	got := makeSummary("Bridge repairs begin", "")
	if got != "News update: Bridge repairs begin." {
		t.Errorf("Unexpected summary for empty content: %q", got)
	}

	got = makeSummary("Bridge repairs begin.", "   short   ")
	if got != "News update: Bridge repairs begin." {
		t.Errorf("Unexpected summary for tiny content: %q", got)
	}

	long := strings.Repeat("The repair work continues daily. ", 20)
	got = makeSummary("Bridge repairs begin", long)
	if len([]rune(got)) > 200 {
		t.Errorf("Expected summary capped at 200 runes, got %d", len([]rune(got)))
	}
	if !strings.HasPrefix(got, "The repair work") {
		t.Errorf("Expected summary derived from content, got %q", got)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"", "en"},
		{"en", "en"},
		{"hi-IN", "hi"},
		{"ta", "ta"},
		{"not a language tag", "en"},
	}
	for _, c := range cases {
		if got := normalizeLanguage(c.in); got != c.expected {
			t.Errorf("normalizeLanguage(%q) = %q, expected %q", c.in, got, c.expected)
		}
	}
}
