package resolve

import (
	"strings"

	"github.com/mkarren/docdex/pkg/index"
)

// MatchFunc picks a single completion for the final word from the
// candidate keys at the stopping level. ok is false when no candidate
// applies or the pick would not extend the word.
type MatchFunc func(lastWord string, candidates []string) (match string, ok bool)

// Completion is what a tab press produces: either an extended command
// line, or the candidate list to display. Choices is nil when Line is
// the answer.
type Completion struct {
	Line    string
	Choices []string
}

// Complete implements tab-press semantics over the tree snapshot.
// iteration counts consecutive presses on the same input, starting at
// 1. The first press extends the line when the match function finds an
// unambiguous continuation; an ambiguous stop holds the line until a
// second press reveals the choices; a second press on a single-child
// chain auto-advances into it.
//
// The trailing-space rules differ per branch on purpose: a space only
// appears when the completed word is final at its level, which is what
// makes repeated presses walk the tree one level at a time.
func Complete(root *index.Node, input string, iteration int, match MatchFunc) Completion {
	tokens := Standardize(root, Tokenize(input), nil)

	var lastWord string
	var otherWords []string
	if len(tokens) > 0 {
		lastWord = tokens[len(tokens)-1]
		otherWords = tokens[:len(tokens)-1]
	}

	candidates, depth := Traverse(root, tokens)
	matched, ok := match(lastWord, candidates)

	switch {
	case ok && depth != len(otherWords)+1:
		line := strings.Join(append(append([]string{}, otherWords...), matched), " ")
		if containsFold(candidates, matched) {
			line += " "
		}
		return Completion{Line: line}

	case iteration > 1 && len(candidates) > 1:
		return Completion{Choices: candidates}

	case iteration > 1 && len(candidates) == 1 && depth != len(otherWords):
		line := strings.TrimRight(input, " ")
		if line != "" {
			line += " "
		}
		return Completion{Line: line + candidates[0] + " "}

	default:
		line := strings.TrimRight(input, " ")
		if depth == len(otherWords)+1 {
			line += " "
		}
		return Completion{Line: line}
	}
}

// MatchCommonPrefix extends the last word to the longest prefix shared
// by every candidate it could still become. A single surviving
// candidate is returned whole; with several, the shared prefix is
// returned only when it actually extends the word.
func MatchCommonPrefix(lastWord string, candidates []string) (string, bool) {
	hits := matchingCandidates(lastWord, candidates)
	if len(hits) == 0 {
		return "", false
	}
	if len(hits) == 1 {
		return hits[0], true
	}

	shared := hits[0]
	for _, h := range hits[1:] {
		shared = commonPrefix(shared, h)
	}
	if len(shared) <= len(lastWord) {
		return "", false
	}
	return shared, true
}

// MatchFirst returns the first candidate the last word is a prefix of.
// Blunter than MatchCommonPrefix; useful for cycling-style frontends.
func MatchFirst(lastWord string, candidates []string) (string, bool) {
	hits := matchingCandidates(lastWord, candidates)
	if len(hits) == 0 {
		return "", false
	}
	return hits[0], true
}

func matchingCandidates(lastWord string, candidates []string) []string {
	var hits []string
	for _, c := range candidates {
		if len(c) >= len(lastWord) && strings.EqualFold(c[:len(lastWord)], lastWord) {
			hits = append(hits, c)
		}
	}
	return hits
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
