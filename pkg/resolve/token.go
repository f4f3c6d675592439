// Package resolve implements the command resolution core: tokenizing a
// typed phrase, fuzzy-correcting each word against the index tree,
// walking the tree to a document or a set of continuations, and the
// tab-completion policy built on top of that walk.
//
// Every operation here is a pure function over an immutable tree
// snapshot; malformed input yields a not-found or empty result, never
// an error.
package resolve

import "strings"

var tokenCleaner = strings.NewReplacer("(", "", ")", "", ";", "")

// Tokenize splits a raw phrase into ordered word tokens. Words are
// split on whitespace and additionally on literal dots, so
// "array.splice" yields "array", "splice". Stray parentheses and
// semicolons are removed from each token. An empty input yields a
// single empty token.
func Tokenize(raw string) []string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return []string{""}
	}

	var tokens []string
	for _, word := range words {
		for _, part := range strings.Split(word, ".") {
			tokens = append(tokens, strings.TrimSpace(tokenCleaner.Replace(part)))
		}
	}
	return tokens
}
