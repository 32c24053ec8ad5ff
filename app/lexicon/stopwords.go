package lexicon

// Stopwords excluded from keyword extraction. Deliberately small; keyword
// extraction is a cheap fallback, not search-grade indexing.
var Stopwords = map[string]bool{
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"from": true, "have": true, "has": true, "had": true, "was": true,
	"were": true, "been": true, "will": true, "would": true, "could": true,
	"should": true, "said": true, "says": true, "also": true, "after": true,
	"about": true, "which": true, "their": true, "there": true, "where": true,
	"when": true, "what": true, "while": true, "into": true, "over": true,
	"more": true, "than": true, "other": true, "some": true, "such": true,
	"only": true, "being": true, "during": true, "between": true,
}
