package sentiment

import "strings"

// Crisis phrases are matched as plain substrings of the lowercased text so
// multi-word phrases are caught without tokenization.
var distressPhrases = []string{
	"suicide", "kill myself", "end my life", "want to die", "don't want to live",
	"harm myself", "self harm", "cutting", "overdose", "no way out",
	"hopeless", "desperate", "cannot go on", "nothing matters", "give up",
}

// DetectDistress reports whether text contains any crisis phrase. It is a
// keyword heuristic, not a classifier: false negatives are expected and
// integrators must treat a false result as "no signal", not "safe".
func DetectDistress(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range distressPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
