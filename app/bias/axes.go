package bias

import (
	"fmt"
	"strings"

	"github.com/rkawale/mediawatch/app/lexicon"
)

// Per-axis analyzers for the refined scorer. Each is a pure function over the
// lowercased title and content and returns a score clamped to [0, 100].

const titleHitWeight = 2.5

const longArticleWords = 100

func analyzePolitical(lowerTitle, lowerText string) AxisScore {
	axis := newAxis("Counts pro- vs anti-government framing; title hits weigh heavier than body hits.")

	pro := weightedHits(lowerTitle, lowerText, lexicon.ProGovernment, &axis)
	anti := weightedHits(lowerTitle, lowerText, lexicon.AntiGovernment, &axis)
	total := pro + anti

	if total > 5 {
		axis.addCapped("framing_volume", total*4, 35)
	}
	if total > 0 {
		imbalance := abs(pro-anti) / total
		if imbalance > 0.6 {
			axis.addCapped("framing_imbalance", imbalance*30, 25)
		}
	}

	partisan := countHits(lowerText, lexicon.PartisanEntities, &axis)
	if partisan > 3 {
		axis.addCapped("partisan_mentions", float64(partisan)*4, 20)
	}

	prescriptive := countHits(lowerText, lexicon.PrescriptiveMarkers, nil)
	if prescriptive > 2 {
		axis.addCapped("prescriptive_language", float64(prescriptive)*5, 15)
	}

	return axis.finish()
}

func analyzeRegional(lowerTitle, lowerText string) AxisScore {
	axis := newAxis("Flags narrow geographic concentration and urban/rural coverage imbalance.")

	states := 0
	for _, state := range lexicon.IndianStates {
		if strings.Contains(lowerText, state) {
			states++
			axis.note(state)
		}
	}
	if states > 4 {
		axis.addCapped("geographic_concentration", float64(states)*5, 25)
	}

	urban := countHits(lowerText, lexicon.UrbanIndicators, nil)
	rural := countHits(lowerText, lexicon.RuralIndicators, nil)
	if urban+rural > 0 {
		imbalance := abs(float64(urban-rural)) / float64(urban+rural)
		axis.addCapped("urban_rural_imbalance", imbalance*30, 30)
	}

	return axis.finish()
}

func analyzeSentimentIntensity(lowerTitle, lowerText string) AxisScore {
	axis := newAxis("Flags overuse of charged and emotional vocabulary.")

	charged := countHits(lowerText, lexicon.ChargedWords, &axis)
	if charged > 0 {
		axis.addCapped("charged_words", float64(charged)*7, 35)
	}

	emotional := countHits(lowerText, lexicon.EmotionalWords, &axis)
	if emotional > 0 {
		axis.addCapped("emotional_words", float64(emotional)*6, 25)
	}

	if countHits(lowerTitle, lexicon.ChargedWords, nil)+countHits(lowerTitle, lexicon.EmotionalWords, nil) > 0 {
		axis.add("charged_headline", 15)
	}

	return axis.finish()
}

func analyzeSourceReliability(lowerTitle, lowerText string) AxisScore {
	axis := newAxis("Flags unverified attribution, weak sourcing and anonymous sourcing.")

	unverified := countHits(lowerText, lexicon.UnverifiedAttribution, &axis)
	if unverified > 3 {
		axis.addCapped("unverified_attribution", float64(unverified)*6, 30)
	}

	weak := countHits(lowerText, lexicon.WeakSourceMarkers, &axis)
	if weak > 2 {
		axis.addCapped("weak_sources", float64(weak)*8, 25)
	}

	if countHits(lowerText, lexicon.AnonymousSourceMarkers, &axis) > 0 {
		axis.add("anonymous_sourcing", 25)
	}

	return axis.finish()
}

func analyzeRepresentation(lowerTitle, lowerText string) AxisScore {
	axis := newAxis("Flags single-perspective coverage in long articles.")

	if len(strings.Fields(lowerText)) < longArticleWords {
		return axis.finish()
	}

	stakeholders := 0
	for _, marker := range lexicon.StakeholderMarkers {
		if strings.Contains(lowerText, marker) {
			stakeholders++
			axis.note(marker)
		}
	}
	if stakeholders < 2 {
		axis.add("single_perspective", 35)
	}

	if countHits(lowerText, lexicon.CounterargumentMarkers, nil) == 0 {
		axis.add("no_counterargument", 25)
	}

	return axis.finish()
}

func analyzeLanguage(lowerTitle, lowerText string) AxisScore {
	axis := newAxis("Flags sensational headlines, clickbait phrasing and excessive punctuation.")

	sensational := countHits(lowerTitle, lexicon.SensationalWords, &axis)
	if sensational > 0 {
		axis.addCapped("sensational_headline", float64(sensational)*18, 35)
	}

	if countHits(lowerTitle+" "+lowerText, lexicon.ClickbaitPatterns, &axis) > 0 {
		axis.add("clickbait_pattern", 40)
	}

	if strings.Count(lowerTitle, "!")+strings.Count(lowerTitle, "?") >= 2 {
		axis.add("excessive_punctuation", 15)
	}

	return axis.finish()
}

// axisBuilder accumulates indicator contributions and evidence for one axis.
type axisBuilder struct {
	score       float64
	evidence    []string
	explanation string
	indicators  map[string]float64
}

func newAxis(explanation string) axisBuilder {
	return axisBuilder{
		explanation: explanation,
		evidence:    []string{},
		indicators:  map[string]float64{},
	}
}

func (b *axisBuilder) add(indicator string, points float64) {
	b.indicators[indicator] = points
	b.score += points
}

func (b *axisBuilder) addCapped(indicator string, points, cap float64) {
	if points > cap {
		points = cap
	}
	b.add(indicator, points)
}

func (b *axisBuilder) note(term string) {
	b.evidence = append(b.evidence, term)
}

func (b *axisBuilder) finish() AxisScore {
	score := b.score
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return AxisScore{
		Score:       score,
		Evidence:    b.evidence,
		Explanation: b.explanation,
		Indicators:  b.indicators,
	}
}

// countHits counts total substring occurrences of the given terms, recording
// matched terms as evidence when an axis builder is supplied.
func countHits(text string, terms []string, axis *axisBuilder) int {
	total := 0
	for _, term := range terms {
		n := strings.Count(text, term)
		if n > 0 {
			total += n
			if axis != nil {
				axis.note(term)
			}
		}
	}
	return total
}

// weightedHits counts lexicon occurrences with title hits weighted heavier.
func weightedHits(lowerTitle, lowerText string, terms []string, axis *axisBuilder) float64 {
	var total float64
	for _, term := range terms {
		titleHits := strings.Count(lowerTitle, term)
		bodyHits := strings.Count(lowerText, term)
		if titleHits+bodyHits > 0 && axis != nil {
			axis.note(fmt.Sprintf("%s (title=%d body=%d)", term, titleHits, bodyHits))
		}
		total += titleHitWeight*float64(titleHits) + float64(bodyHits)
	}
	return total
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
