package bias

const (
	ClassLow    = "Low Bias"
	ClassMedium = "Medium Bias"
	ClassHigh   = "High Bias"
)

// The High boundary is shared; the Medium boundary diverges between the
// interactive path (35) and the batch re-analysis path (45). The divergence is
// inherited behavior kept deliberately: do not unify without a product
// decision (see DESIGN.md).
const (
	HighThreshold          = 65.0
	MediumThresholdRefined = 35.0
	MediumThresholdBatch   = 45.0
)

// ClassifyRefined is used by the interactive/request-time path.
func ClassifyRefined(overall float64) string {
	return classify(overall, MediumThresholdRefined)
}

// ClassifyBatch is used by the batch re-analysis path.
func ClassifyBatch(overall float64) string {
	return classify(overall, MediumThresholdBatch)
}

func classify(overall, medium float64) string {
	switch {
	case overall >= HighThreshold:
		return ClassHigh
	case overall >= medium:
		return ClassMedium
	default:
		return ClassLow
	}
}
