package resolve

import (
	"strings"

	"github.com/mkarren/docdex/pkg/index"
)

// Options selects which document variant a resolution prefers. Detail
// wins over Install when both are set; an unsupported request falls
// back to the basic document instead of failing.
type Options struct {
	Detail  bool
	Install bool
}

// Result is the outcome of resolving a phrase. Exactly one of three
// shapes comes back: a resolvable path (Exists true), a list of
// possible continuations (Suggestions non-nil), or a dead end (both
// zero). Path echoes the raw input when nothing resolved.
type Result struct {
	Path        string
	Exists      bool
	IsIndex     bool
	Suggestions []string
}

// descent is the tagged outcome of walking a token list to its end.
type descent int

const (
	descentIndex    descent = iota // stopped on a node with an index document
	descentLeaf                    // stopped on a node carrying a basic variant
	descentAmbig                   // tokens ran out on an internal node
	descentNotFound                // a token matched no child
)

// walk descends exact child keys until tokens run out or one fails to
// match, and classifies the stopping point.
func walk(node *index.Node, tokens []string) (*index.Node, descent) {
	for len(tokens) > 0 {
		child, ok := node.Child(tokens[0])
		if !ok {
			return node, descentNotFound
		}
		node = child
		tokens = tokens[1:]
	}

	switch {
	case node.Index != nil:
		return node, descentIndex
	case node.Has(index.Basic):
		return node, descentLeaf
	default:
		return node, descentAmbig
	}
}

// Resolve turns a raw phrase into a relative document path against the
// given tree snapshot. The phrase is tokenized and standardized first,
// so minor typos and casing differences still resolve. Ambiguity
// surfaces as suggestions, dead ends as Exists false; Resolve never
// fails outright.
func Resolve(root *index.Node, input string, opts Options) Result {
	tokens := Standardize(root, Tokenize(input), nil)
	node, outcome := walk(root, tokens)

	switch outcome {
	case descentIndex:
		return Result{Path: joinPath(tokens, "index.md"), Exists: true, IsIndex: true}
	case descentLeaf:
		return Result{Path: strings.Join(tokens, "/") + extension(node, opts), Exists: true}
	case descentAmbig:
		return Result{Path: input, Suggestions: node.Keys()}
	default:
		return Result{Path: input}
	}
}

// extension picks the document suffix for a resolved leaf. Priority is
// fixed: a requested detail variant, then a requested install variant,
// then the plain document. Detail and install never combine.
func extension(node *index.Node, opts Options) string {
	switch {
	case opts.Detail && node.Has(index.Detail):
		return ".detail.md"
	case opts.Install && node.Has(index.Install):
		return ".install.md"
	default:
		return ".md"
	}
}

func joinPath(tokens []string, file string) string {
	if len(tokens) == 0 {
		return file
	}
	return strings.Join(tokens, "/") + "/" + file
}
