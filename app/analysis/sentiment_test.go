package analysis

import (
	"testing"
)

func TestSentimentScoreBounds(t *testing.T) {
	cases := []struct {
		pos, neg int
	}{
		{0, 0}, {1, 0}, {0, 1}, {10, 0}, {0, 10}, {50, 50}, {100, 3},
	}
	for _, c := range cases {
		score := SentimentScore(c.pos, c.neg)
		if score < -1 || score > 1 {
			t.Errorf("SentimentScore(%d, %d) = %f, out of [-1, 1]", c.pos, c.neg, score)
		}
	}
}

func TestSentimentScoreDamping(t *testing.T) {
	// One positive hit stays well inside the neutral band
	score := SentimentScore(1, 0)
	if score != 0.25 {
		t.Errorf("Expected score 0.25 for a single positive hit, got %f", score)
	}

	// No hits is exactly zero, not NaN
	if score := SentimentScore(0, 0); score != 0 {
		t.Errorf("Expected score 0 for no hits, got %f", score)
	}
}

func TestSentimentLabelPolicies(t *testing.T) {
	// Score 0.25 is positive under the standard policy, neutral under strict
	if label := SentimentLabel(0.25, 1, 0, LabelPolicyStandard); label != LabelPositive {
		t.Errorf("Expected positive label under standard policy, got %s", label)
	}
	if label := SentimentLabel(0.25, 1, 0, LabelPolicyStrict); label != LabelNeutral {
		t.Errorf("Expected neutral label under strict policy, got %s", label)
	}

	if label := SentimentLabel(-0.25, 0, 1, LabelPolicyStandard); label != LabelNegative {
		t.Errorf("Expected negative label under standard policy, got %s", label)
	}
	if label := SentimentLabel(-0.25, 0, 1, LabelPolicyStrict); label != LabelNeutral {
		t.Errorf("Expected neutral label under strict policy, got %s", label)
	}
}

func TestSentimentLabelMixed(t *testing.T) {
	// Balanced non-trivial counts produce mixed regardless of policy
	score := SentimentScore(5, 5)
	if label := SentimentLabel(score, 5, 5, LabelPolicyStandard); label != LabelMixed {
		t.Errorf("Expected mixed label for 5/5 counts, got %s", label)
	}

	// Below the minimum count threshold mixed never fires
	if label := SentimentLabel(0, 2, 2, LabelPolicyStandard); label != LabelNeutral {
		t.Errorf("Expected neutral label for 2/2 counts, got %s", label)
	}

	// Imbalanced counts are not mixed
	score = SentimentScore(9, 3)
	if label := SentimentLabel(score, 9, 3, LabelPolicyStandard); label == LabelMixed {
		t.Errorf("Expected non-mixed label for 9/3 counts, got %s", label)
	}
}

func TestCountSentimentEnglish(t *testing.T) {
	pos, neg := CountSentiment("The project was a great success, despite the earlier delay.", "en")
	if pos != 2 {
		t.Errorf("Expected 2 positive hits, got %d", pos)
	}
	if neg != 1 {
		t.Errorf("Expected 1 negative hit, got %d", neg)
	}
}

func TestCountSentimentHindi(t *testing.T) {
	pos, neg := CountSentiment("सरकार की योजना से विकास हुआ लेकिन भ्रष्टाचार की शिकायत भी मिली", "hi")
	if pos != 1 {
		t.Errorf("Expected 1 positive hit, got %d", pos)
	}
	if neg != 2 {
		t.Errorf("Expected 2 negative hits, got %d", neg)
	}
}

func TestConfidence(t *testing.T) {
	if c := Confidence(0, 0, 0); c != 0.3 {
		t.Errorf("Expected confidence 0.3 for empty text, got %f", c)
	}
	if c := Confidence(0, 0, 100); c != 0.3 {
		t.Errorf("Expected floor confidence 0.3 with no hits, got %f", c)
	}
	if c := Confidence(50, 50, 100); c != 0.95 {
		t.Errorf("Expected confidence capped at 0.95, got %f", c)
	}
	if c := Confidence(5, 0, 100); c != 0.5 {
		t.Errorf("Expected confidence 0.5, got %f", c)
	}
}

func TestNeutralAnnouncementScenario(t *testing.T) {
	extractor := NewExtractor()
	result := extractor.Run("Government Announces New Infrastructure Plan", "")

	if result.Label != LabelNeutral {
		t.Errorf("Expected neutral label for plain announcement, got %s", result.Label)
	}
	if result.Score < -0.1 || result.Score > 0.1 {
		t.Errorf("Expected near-zero score for plain announcement, got %f", result.Score)
	}
}
