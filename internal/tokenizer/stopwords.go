package tokenizer

// stopWords is a standard English stop-word list, upper-cased and
// pre-filtered to alphanumerics so membership checks can compare directly
// against already-normalized tokens. Applied only by DocumentTokenizer.
var stopWords = buildStopWordSet([]string{
	"A", "ABOUT", "AFTER", "AGAIN", "AGAINST", "ALL", "ALSO", "AM", "AN", "AND",
	"ANY", "ARE", "AS", "AT", "BE", "BECAUSE", "BEEN", "BEFORE", "BEING",
	"BELOW", "BETWEEN", "BOTH", "BUT", "BY", "CAN", "DID", "DO", "DOES",
	"DOING", "DOWN", "DURING", "EACH", "FEW", "FOR", "FROM", "FURTHER", "HAD",
	"HAS", "HAVE", "HAVING", "HE", "HER", "HERE", "HERS", "HERSELF", "HIM",
	"HIMSELF", "HIS", "HOW", "I", "IF", "IN", "INTO", "IS", "IT", "ITS",
	"ITSELF", "JUST", "ME", "MORE", "MOST", "MY", "MYSELF", "NO", "NOR",
	"NOT", "NOW", "OF", "OFF", "ON", "ONCE", "ONLY", "OR", "OTHER", "OUR",
	"OURS", "OURSELVES", "OUT", "OVER", "OWN", "SAME", "SHE", "SHOULD", "SO",
	"SOME", "SUCH", "THAN", "THAT", "THE", "THEIR", "THEIRS", "THEM",
	"THEMSELVES", "THEN", "THERE", "THESE", "THEY", "THIS", "THOSE",
	"THROUGH", "TO", "TOO", "UNDER", "UNTIL", "UP", "VERY", "WAS", "WE",
	"WERE", "WHAT", "WHEN", "WHERE", "WHICH", "WHILE", "WHO", "WHOM", "WHY",
	"WILL", "WITH", "WITHOUT", "YOU", "YOUR", "YOURS", "YOURSELF",
	"YOURSELVES",
})

func buildStopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[filterAlnum(w)] = struct{}{}
	}
	return set
}

func isStopWord(upperToken string) bool {
	_, ok := stopWords[upperToken]
	return ok
}
