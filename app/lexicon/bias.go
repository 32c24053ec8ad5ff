package lexicon

// Keyword tables backing the six bias axes. All lowercase; matched as
// substrings against the lowercased title/content.

// Political axis.

var ProGovernment = []string{
	"visionary", "landmark decision", "historic move", "bold step",
	"masterstroke", "decisive leadership", "game changer",
	"unprecedented achievement", "transformative", "path-breaking",
}

var AntiGovernment = []string{
	"anti-people", "draconian", "authoritarian", "u-turn", "jumla",
	"failed government", "complete failure", "betrayal", "eyewash",
	"vendetta politics", "crony",
}

var PartisanEntities = []string{
	"bjp", "congress", "aap", "tmc", "dmk", "aiadmk", "shiv sena", "ncp",
	"rjd", "jdu", "samajwadi party", "bsp", "left front", "cpim",
}

var PrescriptiveMarkers = []string{
	"must", "should", "ought to", "needs to", "has to", "is bound to",
}

// Sentiment-intensity axis.

var ChargedWords = []string{
	"outrage", "fury", "slam", "blast", "lash", "explosive", "devastating",
	"horrific", "brutal", "catastrophic", "disaster", "chaos", "mayhem",
	"nightmare", "bloodbath", "carnage",
}

var EmotionalWords = []string{
	"heartbreaking", "tragic", "shameful", "disgraceful", "appalling",
	"shocking", "stunning", "outrageous", "terrifying", "alarming",
	"dreadful", "miserable",
}

// Source-reliability axis.

var UnverifiedAttribution = []string{
	"allegedly", "reportedly", "rumored", "it is said", "unconfirmed",
	"claims suggest", "purportedly",
}

var WeakSourceMarkers = []string{
	"social media", "viral post", "whatsapp forward", "twitter user",
	"facebook post", "viral video", "internet users",
}

var AnonymousSourceMarkers = []string{
	"sources said", "sources told", "a source close to", "on condition of anonymity",
	"unnamed official", "people familiar with the matter",
}

// Representation axis.

var StakeholderMarkers = []string{
	"government", "opposition", "official", "expert", "resident", "victim",
	"activist", "spokesperson", "analyst", "witness", "citizen", "union",
	"association", "authorities",
}

var CounterargumentMarkers = []string{
	"however", "but", "although", "on the other hand", "critics",
	"in contrast", "meanwhile", "despite",
}

// Language/sensationalism axis.

var SensationalWords = []string{
	"shocking", "bombshell", "explosive", "sensational", "unbelievable",
	"jaw-dropping", "mind-blowing", "stunning", "bizarre", "outrageous",
	"scandalous", "dramatic",
}

var ClickbaitPatterns = []string{
	"you won't believe", "what happened next", "the reason will shock you",
	"this is why", "find out how", "number 7 will", "goes viral",
	"internet can't stop",
}
