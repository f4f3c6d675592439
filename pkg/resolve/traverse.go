package resolve

import (
	"strings"

	"github.com/mkarren/docdex/pkg/index"
)

// Traverse follows an already-standardized token list down the tree
// without fuzzy correction and reports where descent stops: the child
// keys at the stopping node that the blocking token is a
// case-insensitive prefix of, plus the number of levels successfully
// descended. When tokens run out the blocking token is empty, so every
// eligible key at that level is returned.
func Traverse(node *index.Node, tokens []string) (candidates []string, depth int) {
	for len(tokens) > 0 {
		child, ok := node.Child(tokens[0])
		if !ok {
			break
		}
		node = child
		tokens = tokens[1:]
		depth++
	}

	tok := ""
	if len(tokens) > 0 {
		tok = tokens[0]
	}
	return matchingKeys(node, tok), depth
}

// matchingKeys returns node's traversable keys that tok is a
// case-insensitive prefix of; an empty tok matches all of them.
func matchingKeys(node *index.Node, tok string) []string {
	keys := node.Keys()
	if tok == "" {
		return keys
	}
	var matched []string
	for _, k := range keys {
		if len(k) >= len(tok) && strings.EqualFold(k[:len(tok)], tok) {
			matched = append(matched, k)
		}
	}
	return matched
}
