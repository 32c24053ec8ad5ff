package analysis

import (
	"strings"

	"github.com/rkawale/mediawatch/app/lexicon"
)

// sentimentDamping is added to the denominator of the sentiment score. The
// value 3 keeps single-hit texts well inside the neutral band and avoids
// division by zero on texts with no lexicon matches.
const sentimentDamping = 3

// LabelPolicy fixes the score threshold at which a text stops being neutral.
// Two policies exist on purpose: the extractor and the ingestion path use the
// standard +/-0.2 band, the interactive detect-bias endpoint uses the stricter
// +/-0.3 band. They are kept separate pending a product decision.
type LabelPolicy struct {
	Name      string
	Threshold float64
}

var (
	LabelPolicyStandard = LabelPolicy{Name: "standard", Threshold: 0.2}
	LabelPolicyStrict   = LabelPolicy{Name: "strict", Threshold: 0.3}
)

// mixed requires both polarities to be non-trivial and nearly balanced.
const (
	mixedMinCount  = 3
	mixedImbalance = 0.2
)

// CountSentiment counts positive and negative lexicon hits for the given
// language. English entries are matched against case-folded whitespace tokens;
// Indic entries are matched as substrings.
func CountSentiment(text, lang string) (pos, neg int) {
	set, ok := lexicon.SentimentByLanguage[lang]
	if !ok {
		set = lexicon.SentimentEnglish
	}

	if lang == "en" {
		tokens := strings.Fields(strings.ToLower(text))
		counts := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			counts[strings.Trim(tok, ".,!?;:\"'()")]++
		}
		for _, w := range set.Positive {
			pos += counts[w]
		}
		for _, w := range set.Negative {
			neg += counts[w]
		}
		return pos, neg
	}

	for _, w := range set.Positive {
		pos += strings.Count(text, w)
	}
	for _, w := range set.Negative {
		neg += strings.Count(text, w)
	}
	return pos, neg
}

// SentimentScore maps hit counts to a score in [-1, 1].
func SentimentScore(pos, neg int) float64 {
	score := float64(pos-neg) / float64(pos+neg+sentimentDamping)
	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}

// SentimentLabel applies a label policy to a score and its underlying counts.
func SentimentLabel(score float64, pos, neg int, policy LabelPolicy) string {
	if pos >= mixedMinCount && neg >= mixedMinCount {
		total := float64(pos + neg)
		if imbalance := abs(float64(pos-neg)) / total; imbalance < mixedImbalance {
			return LabelMixed
		}
	}
	if score > policy.Threshold {
		return LabelPositive
	}
	if score < -policy.Threshold {
		return LabelNegative
	}
	return LabelNeutral
}

// Confidence grows with lexicon signal density and is capped at 0.95.
func Confidence(pos, neg, wordCount int) float64 {
	if wordCount == 0 {
		return 0.3
	}
	c := 0.3 + 4*float64(pos+neg)/float64(wordCount)
	if c > 0.95 {
		return 0.95
	}
	return c
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
