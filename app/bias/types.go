package bias

// AxisScore is the result of one axis analyzer. Score is on the raw 0-100
// scale; Indicators holds the per-check point contributions that add up to it.
type AxisScore struct {
	Score       float64            `json:"score"`
	Evidence    []string           `json:"evidence"`
	Explanation string             `json:"explanation"`
	Indicators  map[string]float64 `json:"indicators"`
}

// Result is a full six-axis bias assessment. The six axes are named fields on
// purpose: the six-axis invariant is enforced by the type, not by convention.
type Result struct {
	Political         AxisScore `json:"political"`
	Regional          AxisScore `json:"regional"`
	Sentiment         AxisScore `json:"sentiment"`
	SourceReliability AxisScore `json:"source_reliability"`
	Representation    AxisScore `json:"representation"`
	Language          AxisScore `json:"language"`

	Overall        float64 `json:"overall_score"`  // 0..100, mean of the six axes
	Classification string  `json:"classification"` // Low/Medium/High Bias
	Strategy       string  `json:"strategy"`       // refined or baseline
}

// Axes returns the six axis scores in fixed order, keyed by axis name.
func (r *Result) Axes() []NamedAxis {
	return []NamedAxis{
		{"political", r.Political},
		{"regional", r.Regional},
		{"sentiment", r.Sentiment},
		{"source_reliability", r.SourceReliability},
		{"representation", r.Representation},
		{"language", r.Language},
	}
}

type NamedAxis struct {
	Name string
	Axis AxisScore
}

// Normalized returns the six axis scores scaled to 0..1, as stored on the
// analysis record.
func (r *Result) Normalized() map[string]float64 {
	normalized := make(map[string]float64, 6)
	for _, a := range r.Axes() {
		normalized[a.Name] = a.Axis.Score / 100
	}
	return normalized
}

// Scorer is implemented by both scoring strategies. Score must be a pure
// function of its inputs and must never fail, whatever the input.
type Scorer interface {
	Score(title, content string) Result
	Name() string
}
