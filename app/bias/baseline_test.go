package bias

import (
	"reflect"
	"testing"
)

func TestBaselineScorerPlainText(t *testing.T) {
	scorer := NewBaselineScorer()
	result := scorer.Score("Weather update", "Light rain expected over the weekend.")

	// No keyword categories fire, so every axis sits at its baseline
	expected := map[string]float64{
		"political":          50,
		"regional":           45,
		"sentiment":          55,
		"source_reliability": 50,
		"representation":     50,
		"language":           45,
	}
	for _, a := range result.Axes() {
		if a.Axis.Score != expected[a.Name] {
			t.Errorf("Axis %s = %f, expected baseline %f", a.Name, a.Axis.Score, expected[a.Name])
		}
	}
	if result.Strategy != "baseline" {
		t.Errorf("Expected strategy baseline, got %s", result.Strategy)
	}
}

func TestBaselineScorerCategoryBumps(t *testing.T) {
	scorer := NewBaselineScorer()

	// "outrage" (charged) and "shocking" (emotional) bump the sentiment axis
	// by one increment each
	result := scorer.Score("Public outrage", "A shocking turn of events at the hearing.")
	if result.Sentiment.Score != 55+2*8 {
		t.Errorf("Expected sentiment axis 71, got %f", result.Sentiment.Score)
	}
}

func TestBaselineScorerLengthMultiplier(t *testing.T) {
	scorer := NewBaselineScorer()
	short := scorer.Score("Weather update", "Light rain expected.")

	long := make([]byte, 0, 1600)
	for len(long) < 1600 {
		long = append(long, "calm still mild fair "...)
	}
	longResult := scorer.Score("Weather update", string(long))

	if longResult.Political.Score != short.Political.Score*1.2 {
		t.Errorf("Expected 1.2x multiplier on long text: %f vs %f",
			longResult.Political.Score, short.Political.Score)
	}

	if short.Political.Indicators["length_multiplier"] != 1.0 {
		t.Errorf("Expected multiplier indicator 1.0, got %f", short.Political.Indicators["length_multiplier"])
	}
	if longResult.Political.Indicators["length_multiplier"] != 1.2 {
		t.Errorf("Expected multiplier indicator 1.2, got %f", longResult.Political.Indicators["length_multiplier"])
	}
}

func TestBaselineScorerMaxTwoBumps(t *testing.T) {
	scorer := NewBaselineScorer()

	// All three source-reliability categories fire; only two bumps count
	content := "A viral post spread fast. Sources said the deal was done. Allegedly the papers were unsigned."
	result := scorer.Score("", content)
	if result.SourceReliability.Score > 50+2*8 {
		t.Errorf("Expected at most two category bumps, got %f", result.SourceReliability.Score)
	}
}

func TestBaselineScorerIdempotent(t *testing.T) {
	scorer := NewBaselineScorer()
	title := "Farmers protest over crop prices"
	content := "Village panchayat leaders said the mandi rates collapsed after the harvest."

	first := scorer.Score(title, content)
	second := scorer.Score(title, content)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Baseline scorer is not idempotent")
	}
}
