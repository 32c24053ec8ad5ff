package lexicon

// Topics maps a topic name to the keywords that trigger it. A topic is tagged
// when any keyword appears as a substring in the lowercased title+content.
var Topics = map[string][]string{
	"Politics": {
		"election", "minister", "government", "parliament", "assembly",
		"party", "bjp", "congress", "mla", "mp", "cabinet", "governor",
		"चुनाव", "मंत्री", "सरकार",
	},
	"Economy": {
		"economy", "gdp", "budget", "tax", "inflation", "investment",
		"market", "rupee", "trade", "industry", "employment", "jobs",
		"अर्थव्यवस्था", "बजट",
	},
	"Health": {
		"health", "hospital", "doctor", "disease", "vaccine", "medical",
		"medicine", "patient", "covid", "epidemic", "स्वास्थ्य", "अस्पताल",
	},
	"Education": {
		"education", "school", "college", "university", "student",
		"teacher", "exam", "admission", "scholarship", "शिक्षा", "विद्यालय",
	},
	"Technology": {
		"technology", "digital", "internet", "software", "startup",
		"artificial intelligence", "cyber", "mobile app", "तकनीक",
	},
	"Agriculture": {
		"agriculture", "farmer", "crop", "harvest", "irrigation", "monsoon",
		"fertilizer", "mandi", "msp", "किसान", "कृषि", "फसल",
	},
	"Environment": {
		"environment", "pollution", "climate", "forest", "wildlife",
		"river", "flood", "drought", "waste", "पर्यावरण", "प्रदूषण",
	},
	"Transport": {
		"metro", "railway", "train", "highway", "road", "airport",
		"transport", "traffic", "bus", "मेट्रो", "रेलवे", "सड़क",
	},
	"Crime": {
		"police", "crime", "murder", "theft", "arrest", "court", "fir",
		"investigation", "अपराध", "पुलिस", "गिरफ्तार",
	},
	"Sports": {
		"cricket", "football", "hockey", "olympics", "tournament",
		"stadium", "match", "medal", "क्रिकेट", "खेल",
	},
}

// MaxTopics caps the topic tags returned for a single article.
const MaxTopics = 6
