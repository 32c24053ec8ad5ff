package analysis

// Entity is a naive named entity extracted by pattern matching.
type Entity struct {
	Text string `json:"text"`
	Type string `json:"type"` // PERSON, LOCATION, ORGANIZATION
}

// Result is the output of a single extractor run over one article.
type Result struct {
	Score      float64  `json:"score"` // -1..1
	Label      string   `json:"label"` // positive, negative, neutral, mixed
	Topics     []string `json:"topics"`
	Keywords   []string `json:"keywords"`
	Entities   []Entity `json:"entities"`
	Language   string   `json:"language"`
	Confidence float64  `json:"confidence"` // 0..0.95
}

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
	LabelMixed    = "mixed"
)

const (
	EntityPerson       = "PERSON"
	EntityLocation     = "LOCATION"
	EntityOrganization = "ORGANIZATION"
)
