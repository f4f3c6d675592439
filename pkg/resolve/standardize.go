package resolve

import (
	"strings"

	"github.com/mkarren/docdex/pkg/index"
)

// Correction policy constants. The gap is the margin between the best
// and second-best candidate distance; corrections only fire when the
// runner-up is clearly worse, so a near-tie never triggers an unwanted
// substitution. These cutoffs are behavioral: the completion feel
// depends on them, so they are deliberately not configurable.
const (
	gapOneEdit  = 3 // required gap for a distance-1 correction
	gapTwoEdits = 5 // required gap for a distance-2 correction
	minKeyLen   = 5 // distance-2 corrections need a key longer than this
)

// Observer is invoked on every successful descent during
// standardization, with the tokens still to consume and the node just
// entered. Callers use it to count how many levels were matched.
type Observer func(remaining []string, entered *index.Node)

// Standardize walks tokens against the tree, replacing each token with
// its best-matching key when the correction policy allows, and
// descending as long as the (possibly corrected) token names a child.
// The walk stops at the first token that matches nothing; that token is
// kept in the output if non-empty and any tokens after it are dropped.
//
// Standardize is idempotent: feeding its output back in yields the
// same result.
func Standardize(node *index.Node, tokens []string, obs Observer) []string {
	return standardize(node, tokens, make([]string, 0, len(tokens)), obs)
}

func standardize(node *index.Node, tokens []string, acc []string, obs Observer) []string {
	if len(tokens) == 0 {
		return acc
	}
	tok, rest := tokens[0], tokens[1:]

	if tok != "" {
		if key, ok := correct(node, tok); ok {
			tok = key
		}
	}

	if child, ok := node.Child(tok); ok {
		acc = append(acc, tok)
		if obs != nil {
			obs(rest, child)
		}
		return standardize(child, rest, acc, obs)
	}

	if tok != "" {
		acc = append(acc, tok)
	}
	return acc
}

// correct finds the two closest keys on node for tok and applies the
// correction policy: adopt on an exact case-insensitive match, on
// distance 1 with a gap above gapOneEdit, or on distance 2 with a gap
// above gapTwoEdits when the key is longer than minKeyLen. Returns the
// stored spelling of the adopted key.
func correct(node *index.Node, tok string) (string, bool) {
	lower := strings.ToLower(tok)

	best, second := 1<<30, 1<<30
	bestKey := ""
	for _, key := range node.Keys() {
		d := editDistance(lower, strings.ToLower(key))
		switch {
		case d < best:
			best, second = d, best
			bestKey = key
		case d < second:
			second = d
		}
	}
	if bestKey == "" {
		return "", false
	}

	gap := second - best
	switch {
	case best == 0:
		return bestKey, true
	case best == 1 && gap > gapOneEdit:
		return bestKey, true
	case best == 2 && gap > gapTwoEdits && len(bestKey) > minKeyLen:
		return bestKey, true
	}
	return "", false
}
