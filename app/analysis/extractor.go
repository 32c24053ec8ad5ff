package analysis

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rkawale/mediawatch/app/lexicon"
)

var gazetteerCaser = cases.Title(language.English)

const (
	maxKeywords = 10
	maxEntities = 10
)

var (
	orgPattern    = regexp.MustCompile(`(?i)\b(?:ministry|department|directorate|commission|authority|board) of [a-z]+(?: [a-z]+)?`)
	personPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`)
)

// Extractor produces sentiment, topics, keywords and naive entities from raw
// article text. It is a pure component: same input, same output, no errors.
type Extractor struct {
	policy LabelPolicy
}

func NewExtractor() *Extractor {
	return &Extractor{policy: LabelPolicyStandard}
}

// NewExtractorWithPolicy is used by the interactive path, which labels with
// the strict threshold.
func NewExtractorWithPolicy(policy LabelPolicy) *Extractor {
	return &Extractor{policy: policy}
}

// Run analyzes title and content together and never fails; absence of matches
// yields neutral defaults.
func (e *Extractor) Run(title, content string) Result {
	full := strings.TrimSpace(title + " " + content)
	lang := DetectLanguage(full)

	pos, neg := CountSentiment(full, lang)
	score := SentimentScore(pos, neg)
	wordCount := len(strings.Fields(full))

	return Result{
		Score:      score,
		Label:      SentimentLabel(score, pos, neg, e.policy),
		Topics:     ExtractTopics(title, content),
		Keywords:   ExtractKeywords(full),
		Entities:   ExtractEntities(full),
		Language:   lang,
		Confidence: Confidence(pos, neg, wordCount),
	}
}

// ExtractTopics tags every topic whose keyword list has at least one substring
// hit in the lowercased title+content, capped at lexicon.MaxTopics. Iteration
// order is fixed by sorting topic names so results are deterministic.
func ExtractTopics(title, content string) []string {
	lower := strings.ToLower(title + " " + content)

	topics := make([]string, 0, lexicon.MaxTopics)
	for _, name := range sortedTopicNames() {
		for _, kw := range lexicon.Topics[name] {
			if strings.Contains(lower, kw) {
				topics = append(topics, name)
				break
			}
		}
		if len(topics) >= lexicon.MaxTopics {
			break
		}
	}
	return topics
}

// ExtractKeywords returns the first maxKeywords distinct tokens longer than
// three runes that are not stopwords. Deterministic by construction.
func ExtractKeywords(text string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, maxKeywords)

	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,!?;:\"'()[]")
		if len([]rune(tok)) <= 3 || lexicon.Stopwords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
		if len(keywords) >= maxKeywords {
			break
		}
	}
	return keywords
}

// ExtractEntities runs the cheap heuristic NER: gazetteer states and cities
// become LOCATION, ministry-style phrases become ORGANIZATION, and remaining
// capitalized runs become PERSON. Low precision is accepted.
func ExtractEntities(text string) []Entity {
	lower := strings.ToLower(text)
	entities := make([]Entity, 0, maxEntities)
	taken := make(map[string]bool)

	add := func(text, typ string) bool {
		key := strings.ToLower(text)
		if taken[key] || len(entities) >= maxEntities {
			return false
		}
		taken[key] = true
		entities = append(entities, Entity{Text: text, Type: typ})
		return true
	}

	for _, state := range lexicon.IndianStates {
		if strings.Contains(lower, state) {
			add(gazetteerCaser.String(state), EntityLocation)
		}
	}
	for _, city := range lexicon.IndianCities {
		if strings.Contains(lower, city) {
			add(gazetteerCaser.String(city), EntityLocation)
		}
	}

	for _, m := range orgPattern.FindAllString(text, -1) {
		add(m, EntityOrganization)
	}

	for _, m := range personPattern.FindAllString(text, -1) {
		if taken[strings.ToLower(m)] {
			continue
		}
		add(m, EntityPerson)
	}

	return entities
}

func sortedTopicNames() []string {
	names := make([]string, 0, len(lexicon.Topics))
	for name := range lexicon.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
