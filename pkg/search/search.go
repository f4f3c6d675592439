// Package search provides flat prefix lookup over every document path
// in an index snapshot, for the cases where the user knows a fragment
// of a path rather than the command phrase reaching it.
package search

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/mkarren/docdex/pkg/index"
)

// Entry is one document path with its basic-variant size.
type Entry struct {
	Path string
	Size int64
}

// Index is a patricia trie over the slash-joined paths of one tree
// generation. Build a fresh one after every snapshot swap; the trie is
// read-only afterwards.
type Index struct {
	trie *patricia.Trie
}

// New indexes every leaf-bearing path in the snapshot. Paths are
// stored lowercased so lookups are case-insensitive.
func New(root *index.Node) *Index {
	trie := patricia.NewTrie()
	root.Walk(func(path string, node *index.Node) {
		if path == "" || !node.IsLeaf() {
			return
		}
		trie.Insert(patricia.Prefix(strings.ToLower(path)), node.Size(index.Basic))
	})
	return &Index{trie: trie}
}

// Find returns up to limit entries whose path starts with the given
// prefix, sorted by path. A limit of 0 means no cap.
func (ix *Index) Find(prefix string, limit int) []Entry {
	var entries []Entry

	err := ix.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		size, _ := item.(int64)
		entries = append(entries, Entry{Path: string(p), Size: size})
		return nil
	})
	if err != nil {
		log.Errorf("Visiting path trie: %v", err)
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
