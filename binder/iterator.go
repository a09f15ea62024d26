package binder

import (
	"container/list"
	"iter"
)

// Iterator is a forward, read-only cursor over a binder's notes in sequence
// order. It pins the state the binder held when Iter was called: if the
// binder copy-on-writes to a new state afterwards, the iterator keeps the
// old version alive and finishes over it unchanged.
type Iterator[K, V any] struct {
	state   *state[K, V]
	elem    *list.Element
	started bool
}

// Iter returns an iterator positioned before the first note. Call Next to
// advance to it.
func (b *Binder[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{state: b.state}
}

// Next advances the iterator and reports whether a note is available.
// Key and Value are valid only after Next has returned true.
func (it *Iterator[K, V]) Next() bool {
	if !it.started {
		it.started = true
		it.elem = it.state.front()
	} else if it.elem != nil {
		it.elem = it.elem.Next()
	}
	return it.elem != nil
}

// Key returns the key of the current note.
func (it *Iterator[K, V]) Key() K {
	return it.elem.Value.(*note[K, V]).key
}

// Value returns the value of the current note.
func (it *Iterator[K, V]) Value() V {
	return it.elem.Value.(*note[K, V]).value
}

// All returns the notes in sequence order, front to back. The sequence
// observes the state held when All was called, like Iter.
func (b *Binder[K, V]) All() iter.Seq2[K, V] {
	s := b.state
	return func(yield func(K, V) bool) {
		for e := s.front(); e != nil; e = e.Next() {
			n := e.Value.(*note[K, V])
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns the keys in sequence order.
func (b *Binder[K, V]) Keys() iter.Seq[K] {
	s := b.state
	return func(yield func(K) bool) {
		for e := s.front(); e != nil; e = e.Next() {
			if !yield(e.Value.(*note[K, V]).key) {
				return
			}
		}
	}
}

// Values returns the values in sequence order.
func (b *Binder[K, V]) Values() iter.Seq[V] {
	s := b.state
	return func(yield func(V) bool) {
		for e := s.front(); e != nil; e = e.Next() {
			if !yield(e.Value.(*note[K, V]).value) {
				return
			}
		}
	}
}
