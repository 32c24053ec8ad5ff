package lexicon

// IndianStates is the gazetteer used both for LOCATION entity tagging and for
// the regional-bias geographic concentration check. Lowercase.
var IndianStates = []string{
	"andhra pradesh", "arunachal pradesh", "assam", "bihar", "chhattisgarh",
	"goa", "gujarat", "haryana", "himachal pradesh", "jharkhand", "karnataka",
	"kerala", "madhya pradesh", "maharashtra", "manipur", "meghalaya",
	"mizoram", "nagaland", "odisha", "punjab", "rajasthan", "sikkim",
	"tamil nadu", "telangana", "tripura", "uttar pradesh", "uttarakhand",
	"west bengal", "delhi", "jammu and kashmir", "ladakh", "puducherry",
}

// IndianCities covers the metros and larger tier-2 cities that dominate urban
// coverage. Lowercase.
var IndianCities = []string{
	"mumbai", "delhi", "bengaluru", "bangalore", "hyderabad", "chennai",
	"kolkata", "pune", "ahmedabad", "jaipur", "lucknow", "kanpur", "nagpur",
	"surat", "indore", "bhopal", "patna", "vadodara", "coimbatore", "kochi",
	"visakhapatnam", "chandigarh", "mysuru", "guwahati", "thiruvananthapuram",
}

// UrbanIndicators and RuralIndicators feed the urban/rural coverage balance
// check on the regional axis.
var UrbanIndicators = []string{
	"city", "urban", "metro", "municipal", "corporation", "smart city",
	"metropolitan", "downtown", "suburb",
}

var RuralIndicators = []string{
	"village", "rural", "panchayat", "gram", "farmer", "tehsil", "block",
	"district", "taluka", "hamlet",
}
