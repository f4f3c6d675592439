// Package index holds the document index tree, its builder and the
// snapshot store used to swap a freshly built tree in without blocking
// readers.
package index

import (
	"sort"
	"strings"
)

// Variant names a document flavor that may exist for a tree node.
type Variant string

const (
	Basic   Variant = "basic"
	Detail  Variant = "detail"
	Install Variant = "install"
)

// IndexKey is the reserved child name for a directory-level default
// document. It is never a traversable path segment.
const IndexKey = "index"

// Node is one level of the document index. Children maps path segments
// to deeper levels; Variants records which document flavors exist for
// the path ending at this node, keyed to their byte sizes. Index, when
// set, is the document shown when a phrase resolves exactly here with
// no remaining words.
//
// A Node is never mutated after it has been published through a Store;
// readers may hold it across a reload.
type Node struct {
	Children map[string]*Node  `msgpack:"c,omitempty"`
	Variants map[Variant]int64 `msgpack:"v,omitempty"`
	Index    *Node             `msgpack:"i,omitempty"`
}

// NewNode returns an empty internal node.
func NewNode() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// Child looks up a path segment by its stored spelling.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.Children[key]
	return c, ok
}

// Keys returns the traversable child keys in sorted order. The reserved
// index key never appears here, even if a foreign tree carries it as a
// literal child.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		if strings.EqualFold(k, IndexKey) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether a document of the given variant exists here.
func (n *Node) Has(v Variant) bool {
	_, ok := n.Variants[v]
	return ok
}

// Size returns the byte size recorded for a variant, or 0.
func (n *Node) Size(v Variant) int64 {
	return n.Variants[v]
}

// SetVariant records a document variant and its byte size.
func (n *Node) SetVariant(v Variant, size int64) {
	if n.Variants == nil {
		n.Variants = make(map[Variant]int64)
	}
	n.Variants[v] = size
}

// IsLeaf reports whether at least one document variant exists here.
func (n *Node) IsLeaf() bool {
	return len(n.Variants) > 0
}

// Ensure walks the given path, creating intermediate nodes as needed,
// and returns the node at its end. Used by the builder only; published
// trees are read-only.
func (n *Node) Ensure(path []string) *Node {
	cur := n
	for _, seg := range path {
		if cur.Children == nil {
			cur.Children = make(map[string]*Node)
		}
		next, ok := cur.Children[seg]
		if !ok {
			next = NewNode()
			cur.Children[seg] = next
		}
		cur = next
	}
	return cur
}

// TotalSize sums the byte sizes of every document in the subtree,
// index documents included. The remote sync compares this against the
// descriptor's reported size to decide whether a re-fetch is needed.
func (n *Node) TotalSize() int64 {
	var total int64
	for _, size := range n.Variants {
		total += size
	}
	if n.Index != nil {
		total += n.Index.TotalSize()
	}
	for _, c := range n.Children {
		total += c.TotalSize()
	}
	return total
}

// DocCount counts documents in the subtree, one per variant.
func (n *Node) DocCount() int {
	count := len(n.Variants)
	if n.Index != nil {
		count += n.Index.DocCount()
	}
	for _, c := range n.Children {
		count += c.DocCount()
	}
	return count
}

// Walk visits every node in the subtree in depth-first order, passing
// the slash-joined path reaching it. The root is visited with an empty
// path.
func (n *Node) Walk(fn func(path string, node *Node)) {
	n.walk("", fn)
}

func (n *Node) walk(prefix string, fn func(string, *Node)) {
	fn(prefix, n)
	for _, k := range n.Keys() {
		child := n.Children[k]
		p := k
		if prefix != "" {
			p = prefix + "/" + k
		}
		child.walk(p, fn)
	}
}
