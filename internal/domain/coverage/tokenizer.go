package coverage

import (
	"strings"

	"github.com/fatih/camelcase"
)

// stopWords are high-frequency English words that carry no evidential
// signal and are discarded during tokenization.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "an": {}, "for": {}, "to": {}, "of": {},
	"in": {}, "on": {}, "by": {}, "with": {}, "as": {}, "that": {}, "are": {},
	"is": {}, "be": {}, "or": {}, "at": {}, "from": {}, "this": {}, "it": {},
	"into": {}, "over": {}, "under": {}, "up": {}, "down": {}, "across": {},
	"about": {}, "between": {}, "their": {}, "your": {}, "you": {}, "we": {},
	"our": {}, "they": {},
}

// Tokenize returns the set of significant tokens in text. Empty input
// yields an empty set, never an error.
func Tokenize(text string) map[string]struct{} {
	tokens := TokenList(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// TokenList returns the significant tokens of text in order, duplicates
// preserved. Tokenization is case-insensitive, treats any non-alphanumeric
// rune as a separator (so punctuation splits rather than merges adjacent
// words), and drops stop words. No stemming, no synonym expansion.
func TokenList(text string) []string {
	if text == "" {
		return nil
	}

	// Split CamelCase runs before lower-casing so "MooringOperations"
	// yields the same tokens as "mooring operations".
	var sb strings.Builder
	sb.Grow(len(text) + 16)
	for _, field := range strings.Fields(text) {
		for _, word := range camelcase.Split(field) {
			sb.WriteString(word)
			sb.WriteByte(' ')
		}
	}

	normalized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, strings.ToLower(sb.String()))

	var tokens []string
	for _, tok := range strings.Fields(normalized) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
