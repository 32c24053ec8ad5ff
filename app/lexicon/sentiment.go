package lexicon

// Sentiment word lists per language. Latin-script entries are matched against
// whitespace tokens; non-Latin entries are matched as substrings because
// agglutinative suffixes make word-boundary matching useless for Indic scripts.

type SentimentSet struct {
	Positive []string
	Negative []string
}

var SentimentEnglish = SentimentSet{
	Positive: []string{
		"good", "great", "excellent", "positive", "success", "successful",
		"improve", "improved", "improvement", "benefit", "beneficial",
		"progress", "growth", "achievement", "welfare", "development",
		"launched", "inaugurated", "approved", "awarded", "praised",
		"relief", "support", "boost", "milestone", "record",
	},
	Negative: []string{
		"bad", "poor", "terrible", "negative", "failure", "failed",
		"problem", "crisis", "corruption", "scam", "fraud", "delay",
		"delayed", "protest", "accident", "death", "dead", "injured",
		"shortage", "complaint", "criticized", "blamed", "neglect",
		"collapse", "violation", "illegal", "arrested", "scandal",
	},
}

// SentimentByLanguage maps a detected language code to its lexicon. Keys follow
// the two-letter codes produced by analysis.DetectLanguage.
var SentimentByLanguage = map[string]SentimentSet{
	"en": SentimentEnglish,
	"hi": {
		Positive: []string{"अच्छा", "बेहतर", "विकास", "सफलता", "सफल", "प्रगति", "लाभ", "सुधार", "उपलब्धि", "कल्याण", "राहत", "समर्थन"},
		Negative: []string{"बुरा", "खराब", "समस्या", "संकट", "भ्रष्टाचार", "घोटाला", "विफल", "असफल", "विरोध", "दुर्घटना", "मौत", "शिकायत", "देरी"},
	},
	"ta": {
		Positive: []string{"நல்ல", "சிறந்த", "வளர்ச்சி", "வெற்றி", "முன்னேற்றம்", "நலன்", "சாதனை", "மேம்பாடு"},
		Negative: []string{"மோசமான", "பிரச்சனை", "நெருக்கடி", "ஊழல்", "தோல்வி", "போராட்டம்", "விபத்து", "மரணம்", "புகார்"},
	},
	"te": {
		Positive: []string{"మంచి", "అభివృద్ధి", "విజయం", "ప్రగతి", "లాభం", "మెరుగుదల", "సంక్షేమం"},
		Negative: []string{"చెడు", "సమస్య", "సంక్షోభం", "అవినీతి", "వైఫల్యం", "నిరసన", "ప్రమాదం", "మరణం", "ఫిర్యాదు"},
	},
	"bn": {
		Positive: []string{"ভালো", "উন্নয়ন", "সাফল্য", "অগ্রগতি", "সুবিধা", "উন্নতি", "কল্যাণ"},
		Negative: []string{"খারাপ", "সমস্যা", "সংকট", "দুর্নীতি", "ব্যর্থতা", "প্রতিবাদ", "দুর্ঘটনা", "মৃত্যু", "অভিযোগ"},
	},
	"mr": {
		Positive: []string{"चांगले", "विकास", "यश", "प्रगती", "फायदा", "सुधारणा", "कल्याण"},
		Negative: []string{"वाईट", "समस्या", "संकट", "भ्रष्टाचार", "अपयश", "आंदोलन", "अपघात", "मृत्यू", "तक्रार"},
	},
	"gu": {
		Positive: []string{"સારું", "વિકાસ", "સફળતા", "પ્રગતિ", "લાભ", "સુધારો", "કલ્યાણ"},
		Negative: []string{"ખરાબ", "સમસ્યા", "કટોકટી", "ભ્રષ્ટાચાર", "નિષ્ફળતા", "વિરોધ", "અકસ્માત", "મૃત્યુ", "ફરિયાદ"},
	},
	"kn": {
		Positive: []string{"ಒಳ್ಳೆಯ", "ಅಭಿವೃದ್ಧಿ", "ಯಶಸ್ಸು", "ಪ್ರಗತಿ", "ಲಾಭ", "ಸುಧಾರಣೆ", "ಕಲ್ಯಾಣ"},
		Negative: []string{"ಕೆಟ್ಟ", "ಸಮಸ್ಯೆ", "ಬಿಕ್ಕಟ್ಟು", "ಭ್ರಷ್ಟಾಚಾರ", "ವೈಫಲ್ಯ", "ಪ್ರತಿಭಟನೆ", "ಅಪಘಾತ", "ಸಾವು", "ದೂರು"},
	},
	"ml": {
		Positive: []string{"നല്ല", "വികസനം", "വിജയം", "പുരോഗതി", "നേട്ടം", "മെച്ചപ്പെടുത്തൽ", "ക്ഷേമം"},
		Negative: []string{"മോശം", "പ്രശ്നം", "പ്രതിസന്ധി", "അഴിമതി", "പരാജയം", "പ്രതിഷേധം", "അപകടം", "മരണം", "പരാതി"},
	},
}
