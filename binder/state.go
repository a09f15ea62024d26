package binder

import (
	"container/list"

	"github.com/google/btree"
)

// indexDegree is the branching factor of the finder B-tree.
const indexDegree = 32

// note is one key/value entry held in sequence order.
type note[K, V any] struct {
	key   K
	value V
}

// locator pairs a key with the sequence element holding its note. The finder
// stores locators; lookups probe with the key alone and a nil element.
type locator[K, V any] struct {
	key  K
	elem *list.Element
}

// state is the shared payload behind one or more Binder handles.
//
// Invariants: count equals the length of notes and the length of finder;
// every note in the sequence has exactly one finder entry locating it; no
// two notes share a key.
//
// owner tags the single handle allowed to mutate this state in place.
// Copy clears the tag, so after a copy both handles deep-clone before their
// next write. A nil *state is the canonical empty state: Clear on a shared
// state repoints to it, and New allocates nothing.
type state[K, V any] struct {
	notes  *list.List // of *note[K, V], front to back in sequence order
	finder *btree.BTreeG[locator[K, V]]
	count  int
	owner  *Binder[K, V]
}

func newState[K, V any](less func(K, K) bool) *state[K, V] {
	return &state[K, V]{
		notes: list.New(),
		finder: btree.NewG(indexDegree, func(a, b locator[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

// lookup returns the sequence element holding k's note, or nil if k is
// absent. Safe on the canonical empty (nil) state.
func (s *state[K, V]) lookup(k K) *list.Element {
	if s == nil {
		return nil
	}
	loc, ok := s.finder.Get(locator[K, V]{key: k})
	if !ok {
		return nil
	}
	return loc.elem
}

// front returns the first sequence element, or nil when empty.
func (s *state[K, V]) front() *list.Element {
	if s == nil {
		return nil
	}
	return s.notes.Front()
}

// clone deep-copies s: same sequence order, each key and value copied, and a
// freshly rebuilt finder pointing into the new sequence. Nothing is aliased
// between old and new state. Cloning the canonical empty (nil) state yields
// a fresh empty one. The clone carries no owner tag; the caller sets it.
func (s *state[K, V]) clone(less func(K, K) bool) *state[K, V] {
	out := newState[K, V](less)
	if s == nil {
		return out
	}
	for e := s.notes.Front(); e != nil; e = e.Next() {
		n := e.Value.(*note[K, V])
		elem := out.notes.PushBack(&note[K, V]{key: n.key, value: n.value})
		out.finder.ReplaceOrInsert(locator[K, V]{key: n.key, elem: elem})
	}
	out.count = s.count
	return out
}

// index links elem's note into the finder and bumps the count. elem must
// already be in the sequence and its key must be absent from the finder.
func (s *state[K, V]) index(elem *list.Element) {
	n := elem.Value.(*note[K, V])
	s.finder.ReplaceOrInsert(locator[K, V]{key: n.key, elem: elem})
	s.count++
}

// remove erases k's note from both views. k must be present.
func (s *state[K, V]) remove(k K) {
	loc, ok := s.finder.Delete(locator[K, V]{key: k})
	if ok {
		s.notes.Remove(loc.elem)
		s.count--
	}
}

// reset empties the state in place, keeping its allocations and owner tag.
func (s *state[K, V]) reset() {
	s.notes.Init()
	s.finder.Clear(false)
	s.count = 0
}
