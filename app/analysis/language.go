package analysis

import "unicode"

// scriptRanges maps a language code to the Unicode block its script occupies.
// Marathi shares Devanagari with Hindi and cannot be told apart by code-point
// sniffing alone, so Devanagari text resolves to "hi".
var scriptRanges = []struct {
	lang  string
	table *unicode.RangeTable
}{
	{"hi", unicode.Devanagari},
	{"ta", unicode.Tamil},
	{"te", unicode.Telugu},
	{"bn", unicode.Bengali},
	{"gu", unicode.Gujarati},
	{"kn", unicode.Kannada},
	{"ml", unicode.Malayalam},
}

// DetectLanguage sniffs the dominant script of the text and returns a
// two-letter language code, defaulting to English.
func DetectLanguage(text string) string {
	counts := make(map[string]int, len(scriptRanges))
	total := 0

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		for _, sr := range scriptRanges {
			if unicode.Is(sr.table, r) {
				counts[sr.lang]++
				break
			}
		}
	}

	if total == 0 {
		return "en"
	}

	best := ""
	bestCount := 0
	for _, sr := range scriptRanges {
		if counts[sr.lang] > bestCount {
			best = sr.lang
			bestCount = counts[sr.lang]
		}
	}

	// Require the script to actually dominate; mixed English text with a
	// stray Devanagari quote stays English.
	if best != "" && bestCount*4 >= total {
		return best
	}
	return "en"
}
