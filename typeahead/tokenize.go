package typeahead

import "strings"

// asciiPunctuation is the full ASCII punctuation class, stripped from the
// edges of each word during tokenization.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// tokenize splits text on whitespace, lowercases each resulting word, and
// strips ASCII punctuation from only the leading and trailing runs of
// each word (interior punctuation such as apostrophes and hyphens is
// preserved). Words that become empty after stripping are discarded.
//
// The same rule is applied identically to indexed data (Session.Add) and
// to query prefix arguments (Session.Query / WeightedQuery).
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.ToLower(field)
		word = strings.Trim(word, asciiPunctuation)
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}
