package bias

import (
	"sort"
	"strings"

	"github.com/rkawale/mediawatch/app/lexicon"
)

// BaselineScorer is the ingestion-time strategy: every axis starts at a fixed
// baseline, gains a small fixed increment per matched keyword category, and is
// scaled by a text-length multiplier. It is deliberately simpler and less
// discriminating than the refined scorer; the ingestion hot path selects it
// explicitly. The two strategies are separate algorithms, not variants of one.
type BaselineScorer struct{}

var _ Scorer = (*BaselineScorer)(nil)

func NewBaselineScorer() *BaselineScorer {
	return &BaselineScorer{}
}

func (s *BaselineScorer) Name() string { return "baseline" }

const categoryIncrement = 8

// Per-axis baselines and the keyword categories that bump them. At most two
// category bumps count per axis.
var baselineAxes = []struct {
	name        string
	baseline    float64
	explanation string
	categories  map[string][]string
}{
	{
		name: "political", baseline: 50,
		explanation: "Baseline political score with framing keyword bumps.",
		categories: map[string][]string{
			"pro_government":  lexicon.ProGovernment,
			"anti_government": lexicon.AntiGovernment,
			"partisan":        lexicon.PartisanEntities,
		},
	},
	{
		name: "regional", baseline: 45,
		explanation: "Baseline regional score with coverage keyword bumps.",
		categories: map[string][]string{
			"urban": lexicon.UrbanIndicators,
			"rural": lexicon.RuralIndicators,
		},
	},
	{
		name: "sentiment", baseline: 55,
		explanation: "Baseline intensity score with charged vocabulary bumps.",
		categories: map[string][]string{
			"charged":   lexicon.ChargedWords,
			"emotional": lexicon.EmotionalWords,
		},
	},
	{
		name: "source_reliability", baseline: 50,
		explanation: "Baseline reliability score with sourcing keyword bumps.",
		categories: map[string][]string{
			"unverified": lexicon.UnverifiedAttribution,
			"weak":       lexicon.WeakSourceMarkers,
			"anonymous":  lexicon.AnonymousSourceMarkers,
		},
	},
	{
		name: "representation", baseline: 50,
		explanation: "Baseline representation score with stakeholder keyword bumps.",
		categories: map[string][]string{
			"stakeholders":     lexicon.StakeholderMarkers,
			"counterarguments": lexicon.CounterargumentMarkers,
		},
	},
	{
		name: "language", baseline: 45,
		explanation: "Baseline language score with sensational keyword bumps.",
		categories: map[string][]string{
			"sensational": lexicon.SensationalWords,
			"clickbait":   lexicon.ClickbaitPatterns,
		},
	},
}

func (s *BaselineScorer) Score(title, content string) Result {
	lower := strings.ToLower(title + " " + content)
	multiplier := lengthMultiplier(content)

	scored := make(map[string]AxisScore, 6)
	for _, def := range baselineAxes {
		scored[def.name] = scoreBaselineAxis(lower, multiplier, def.baseline, def.explanation, def.categories)
	}

	result := Result{
		Political:         scored["political"],
		Regional:          scored["regional"],
		Sentiment:         scored["sentiment"],
		SourceReliability: scored["source_reliability"],
		Representation:    scored["representation"],
		Language:          scored["language"],
		Strategy:          s.Name(),
	}

	result.Overall = meanOfAxes(&result)
	result.Classification = ClassifyRefined(result.Overall)
	return result
}

func scoreBaselineAxis(lower string, multiplier, baseline float64, explanation string, categories map[string][]string) AxisScore {
	axis := newAxis(explanation)
	axis.add("baseline", baseline)

	bumps := 0
	for _, category := range sortedKeys(categories) {
		if bumps >= 2 {
			break
		}
		for _, term := range categories[category] {
			if strings.Contains(lower, term) {
				axis.add(category, categoryIncrement)
				axis.note(term)
				bumps++
				break
			}
		}
	}

	axis.score *= multiplier
	axis.indicators["length_multiplier"] = multiplier
	return axis.finish()
}

// lengthMultiplier scales baseline scores up for longer texts: short articles
// carry less signal, so their fixed baselines are not inflated.
func lengthMultiplier(content string) float64 {
	switch n := len(content); {
	case n < 400:
		return 1.0
	case n < 1500:
		return 1.1
	default:
		return 1.2
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
