package resolve

import (
	"testing"

	"github.com/mkarren/docdex/pkg/index"
)

func TestResolve(t *testing.T) {
	tree := docTree()

	testCases := []struct {
		input       string
		opts        Options
		expected    Result
		description string
	}{
		{
			"array.splice", Options{},
			Result{Path: "array/splice.md", Exists: true},
			"Exact phrase",
		},
		{
			"array.splcie", Options{},
			Result{Path: "array/splice.md", Exists: true},
			"Typo corrected before descent",
		},
		{
			"ARRAY Splice", Options{},
			Result{Path: "array/splice.md", Exists: true},
			"Casing normalized to stored keys",
		},
		{
			"array.splice", Options{Detail: true},
			Result{Path: "array/splice.detail.md", Exists: true},
			"Detail variant requested and present",
		},
		{
			"array.splice", Options{Install: true},
			Result{Path: "array/splice.install.md", Exists: true},
			"Install variant requested and present",
		},
		{
			"array.splice", Options{Detail: true, Install: true},
			Result{Path: "array/splice.detail.md", Exists: true},
			"Detail outranks install when both are requested",
		},
		{
			"array.push", Options{Detail: true},
			Result{Path: "array/push.md", Exists: true},
			"Missing detail variant falls back to plain",
		},
		{
			"array", Options{},
			Result{Path: "array/index.md", Exists: true, IsIndex: true},
			"Exhausted tokens on a node with an index document",
		},
		{
			"javascript", Options{},
			Result{Path: "javascript", Suggestions: []string{"closures"}},
			"Exhausted tokens on an internal node lists continuations",
		},
		{
			"nonexistent.thing", Options{},
			Result{Path: "nonexistent.thing"},
			"Dead end echoes the input",
		},
		{
			"array.splice.deeper", Options{},
			Result{Path: "array.splice.deeper"},
			"Token past a leaf is a dead end",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Resolve(tree, tc.input, tc.opts)
			if got.Path != tc.expected.Path {
				t.Errorf("Path = %q, want %q", got.Path, tc.expected.Path)
			}
			if got.Exists != tc.expected.Exists {
				t.Errorf("Exists = %v, want %v", got.Exists, tc.expected.Exists)
			}
			if got.IsIndex != tc.expected.IsIndex {
				t.Errorf("IsIndex = %v, want %v", got.IsIndex, tc.expected.IsIndex)
			}
			if !sameStrings(got.Suggestions, tc.expected.Suggestions) {
				t.Errorf("Suggestions = %v, want %v", got.Suggestions, tc.expected.Suggestions)
			}
		})
	}
}

// Resolution outcomes are mutually exclusive: a result is a path, a
// suggestion list, or nothing, never a mix.
func TestResolveOutcomesExclusive(t *testing.T) {
	tree := docTree()
	for _, input := range []string{"array.splice", "array", "javascript", "garbage", ""} {
		res := Resolve(tree, input, Options{})
		if res.Exists && res.Suggestions != nil {
			t.Errorf("Resolve(%q) returned both a path and suggestions: %+v", input, res)
		}
	}
}

// An index document at the root still resolves with no tokens left.
func TestResolveRootIndex(t *testing.T) {
	tree := index.NewNode()
	tree.Index = index.NewNode()
	tree.Index.SetVariant(index.Basic, 10)

	res := Resolve(tree, "", Options{})
	if !res.Exists || !res.IsIndex || res.Path != "index.md" {
		t.Errorf("Resolve(\"\") = %+v, want index.md", res)
	}
}
