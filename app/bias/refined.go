package bias

import "strings"

// RefinedScorer is the request-time strategy: each axis runs its full point
// schedule over the text. Used by the interactive detect-bias endpoint and the
// batch re-analysis sweep.
type RefinedScorer struct {
	classify func(float64) string
}

var _ Scorer = (*RefinedScorer)(nil)

// NewRefinedScorer classifies with the interactive Medium boundary (35).
func NewRefinedScorer() *RefinedScorer {
	return &RefinedScorer{classify: ClassifyRefined}
}

// NewBatchRefinedScorer classifies with the batch Medium boundary (45).
func NewBatchRefinedScorer() *RefinedScorer {
	return &RefinedScorer{classify: ClassifyBatch}
}

func (s *RefinedScorer) Name() string { return "refined" }

func (s *RefinedScorer) Score(title, content string) Result {
	lowerTitle := strings.ToLower(title)
	lowerBody := strings.ToLower(content)

	result := Result{
		Political:         analyzePolitical(lowerTitle, lowerBody),
		Regional:          analyzeRegional(lowerTitle, lowerBody),
		Sentiment:         analyzeSentimentIntensity(lowerTitle, lowerBody),
		SourceReliability: analyzeSourceReliability(lowerTitle, lowerBody),
		Representation:    analyzeRepresentation(lowerTitle, lowerBody),
		Language:          analyzeLanguage(lowerTitle, lowerBody),
		Strategy:          s.Name(),
	}

	result.Overall = meanOfAxes(&result)
	result.Classification = s.classify(result.Overall)
	return result
}

func meanOfAxes(r *Result) float64 {
	var sum float64
	for _, a := range r.Axes() {
		sum += a.Axis.Score
	}
	return sum / 6
}
