package search

import (
	"reflect"
	"testing"

	"github.com/mkarren/docdex/pkg/index"
)

func fixture() *index.Node {
	root := index.NewNode()
	root.Ensure([]string{"array", "splice"}).SetVariant(index.Basic, 120)
	root.Ensure([]string{"array", "push"}).SetVariant(index.Basic, 60)
	root.Ensure([]string{"array", "pop"}).SetVariant(index.Basic, 55)
	root.Ensure([]string{"string", "charAt"}).SetVariant(index.Basic, 80)
	// internal node without documents must not be indexed
	root.Ensure([]string{"misc"})
	return root
}

func paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestFind(t *testing.T) {
	ix := New(fixture())

	testCases := []struct {
		prefix      string
		limit       int
		expected    []string
		description string
	}{
		{"array", 0, []string{"array/pop", "array/push", "array/splice"}, "All under a branch, sorted"},
		{"array/p", 0, []string{"array/pop", "array/push"}, "Deep prefix"},
		{"array", 2, []string{"array/pop", "array/push"}, "Limit caps results"},
		{"STRING", 0, []string{"string/charat"}, "Lookup is case-insensitive"},
		{"zzz", 0, nil, "No match"},
		{"misc", 0, nil, "Document-less nodes are not indexed"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := paths(ix.Find(tc.prefix, tc.limit))
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Find(%q, %d) = %v, want %v", tc.prefix, tc.limit, got, tc.expected)
			}
		})
	}
}

func TestFindCarriesSizes(t *testing.T) {
	ix := New(fixture())
	entries := ix.Find("array/splice", 0)
	if len(entries) != 1 || entries[0].Size != 120 {
		t.Errorf("Find(array/splice) = %v, want one entry of size 120", entries)
	}
}
