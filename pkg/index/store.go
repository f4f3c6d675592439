package index

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Store publishes the active index snapshot. Replacement is a single
// pointer swap: readers always observe either the old or the new tree
// in full, never a partial one. At most one writer (the builder or the
// remote syncer) is expected; subscribers are notified after a swap.
type Store struct {
	current atomic.Pointer[Node]
	gen     atomic.Uint64

	mu   sync.Mutex
	subs []func(*Node)
}

// NewStore creates a store publishing the given tree as generation 1.
func NewStore(root *Node) *Store {
	s := &Store{}
	if root == nil {
		root = NewNode()
	}
	s.current.Store(root)
	s.gen.Store(1)
	return s
}

// Current returns the presently active, immutable tree snapshot.
func (s *Store) Current() *Node {
	return s.current.Load()
}

// Generation returns the swap counter, starting at 1.
func (s *Store) Generation() uint64 {
	return s.gen.Load()
}

// Replace atomically swaps in a new tree and notifies subscribers.
// A nil tree is ignored.
func (s *Store) Replace(root *Node) {
	if root == nil {
		log.Warn("Ignoring nil index replacement")
		return
	}
	s.current.Store(root)
	gen := s.gen.Add(1)
	log.Debugf("Index replaced, generation %d (%d docs)", gen, root.DocCount())

	s.mu.Lock()
	subs := make([]func(*Node), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(root)
	}
}

// Subscribe registers a callback fired after every successful
// replacement with the new tree. Callbacks run on the writer's
// goroutine and must not block.
func (s *Store) Subscribe(fn func(*Node)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
