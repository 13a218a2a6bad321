// Package controllers contains the page-level synchronization controllers.
// Each controller owns a local, newest-first collection of domain records,
// reloads it when the session identity changes, and applies optimistic
// local mutations after the gateway acknowledges a write.
//
// State machine, shared by every controller:
//
//	Unauthenticated — no identity; no gateway calls are made.
//	Loading         — identity present, scoped read in flight.
//	Ready           — collection populated; mutations enabled.
//
// A failed load (gateway or mapping error) is logged and degrades to an
// empty but Ready collection. Write errors are returned to the caller and
// leave local state untouched.
package controllers

import "sync"

// State is a controller's position in its load lifecycle.
type State int

const (
	Unauthenticated State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// syncState is the shared guard for controller loads: the state value plus
// a generation counter. Every identity transition bumps the generation, so
// a load that resolves after a newer transition is recognized as stale and
// discarded instead of overwriting the collection.
type syncState struct {
	mu    sync.Mutex
	state State
	gen   uint64
}

// signedOut moves to Unauthenticated and invalidates in-flight loads.
func (s *syncState) signedOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Unauthenticated
	s.gen++
}

// beginLoad moves to Loading and returns the generation the new load must
// present to finishLoad.
func (s *syncState) beginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Loading
	s.gen++
	return s.gen
}

// finishLoad reports whether a load with the given generation is still
// current. If so the controller transitions to Ready and swap runs before
// the guard is released, so a generation bump can never slip between the
// check and the collection swap.
func (s *syncState) finishLoad(gen uint64, swap func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.state = Ready
	swap()
	return true
}

func (s *syncState) current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// cache is the local collection: the last-known-remote snapshot plus the
// mutations this session has had acknowledged, keyed by id and ordered
// newest first. It does not reconcile with writes made by other sessions;
// there is no subscription to remote changes.
type cache[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(T) string
}

func newCache[T any](id func(T) string) *cache[T] {
	return &cache[T]{id: id}
}

// replace installs a freshly loaded remote snapshot.
func (c *cache[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

// prepend puts an acknowledged create at the front, keeping newest-first
// order.
func (c *cache[T]) prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// remove drops the record with the given id; everything else is untouched.
func (c *cache[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			out = append(out, item)
		}
	}
	c.items = out
}

func (c *cache[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// list returns a copy of the collection in order.
func (c *cache[T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
