package binder

import "cmp"

// Binder is an ordered, keyed container with copy-on-write value semantics.
// It holds notes (key/value pairs) in explicit sequence order, with keyed
// lookup in O(log n). See the package documentation for the sharing and
// concurrency model.
//
// A Binder must be created with New or NewFunc and duplicated with Copy.
// Plain struct assignment aliases the handle itself and is not a supported
// way to copy a binder.
type Binder[K, V any] struct {
	state *state[K, V]
	less  func(K, K) bool
}

// New creates an empty binder whose keys follow their natural order.
// It performs no allocation; the empty binder shares the canonical empty
// state.
func New[K cmp.Ordered, V any]() *Binder[K, V] {
	return NewFunc[K, V](cmp.Less[K])
}

// NewFunc creates an empty binder ordered by less, which must be a strict
// weak ordering over K. Use it for key types without a natural order.
func NewFunc[K, V any](less func(K, K) bool) *Binder[K, V] {
	return &Binder[K, V]{less: less}
}

// Copy returns a new handle over the same logical contents. The call is
// O(1): both handles share one state until either mutates, at which point
// the mutating handle takes a private deep copy and the other is unaffected.
func (b *Binder[K, V]) Copy() *Binder[K, V] {
	if b.state != nil {
		// Neither handle may write in place from here on.
		b.state.owner = nil
	}
	return &Binder[K, V]{state: b.state, less: b.less}
}

// mutable returns a state this handle may mutate in place: the current one
// when it is exclusively owned, otherwise a complete deep clone tagged with
// this handle. The caller applies its change and then commits by assigning
// the returned state to b.state; until that commit the binder's visible
// contents are untouched.
func (b *Binder[K, V]) mutable() *state[K, V] {
	if b.state != nil && b.state.owner == b {
		return b.state
	}
	s := b.state.clone(b.less)
	s.owner = b
	return s
}

// InsertFront inserts the note (k, v) as the first element of the sequence.
// It returns ErrDuplicateKey if k is already present.
func (b *Binder[K, V]) InsertFront(k K, v V) error {
	if b.state.lookup(k) != nil {
		return ErrDuplicateKey
	}
	s := b.mutable()
	s.index(s.notes.PushFront(&note[K, V]{key: k, value: v}))
	b.state = s
	return nil
}

// InsertAfter inserts the note (k, v) immediately following prev's note in
// the sequence. It returns ErrDuplicateKey if k is already present and
// ErrKeyNotFound if prev is absent.
func (b *Binder[K, V]) InsertAfter(prev, k K, v V) error {
	if b.state.lookup(k) != nil {
		return ErrDuplicateKey
	}
	if b.state.lookup(prev) == nil {
		return ErrKeyNotFound
	}
	s := b.mutable()
	// Re-resolve prev: after a clone the element lives in the new sequence.
	mark := s.lookup(prev)
	s.index(s.notes.InsertAfter(&note[K, V]{key: k, value: v}, mark))
	b.state = s
	return nil
}

// RemoveFront removes the first note in sequence order. It returns ErrEmpty
// when the binder has no notes.
func (b *Binder[K, V]) RemoveFront() error {
	front := b.state.front()
	if front == nil {
		return ErrEmpty
	}
	return b.Remove(front.Value.(*note[K, V]).key)
}

// Remove removes k's note. It returns ErrKeyNotFound if k is absent.
func (b *Binder[K, V]) Remove(k K) error {
	if b.state.lookup(k) == nil {
		return ErrKeyNotFound
	}
	s := b.mutable()
	s.remove(k)
	b.state = s
	return nil
}

// Get returns the value bound to k. It never clones and never mutates.
// It returns ErrKeyNotFound if k is absent.
func (b *Binder[K, V]) Get(k K) (V, error) {
	elem := b.state.lookup(k)
	if elem == nil {
		var zero V
		return zero, ErrKeyNotFound
	}
	return elem.Value.(*note[K, V]).value, nil
}

// GetMutable returns a pointer to the value bound to k, through which the
// caller may write. Copy-on-write is resolved first, so writes through the
// pointer are never visible to handles that shared the state beforehand.
// It returns ErrKeyNotFound if k is absent.
//
// The pointer is valid until the binder mutates past the state it points
// into; treat it as short-lived.
func (b *Binder[K, V]) GetMutable(k K) (*V, error) {
	if b.state.lookup(k) == nil {
		return nil, ErrKeyNotFound
	}
	s := b.mutable()
	b.state = s
	n := s.lookup(k).Value.(*note[K, V])
	return &n.value, nil
}

// Has reports whether k is present. It never clones and never mutates.
func (b *Binder[K, V]) Has(k K) bool {
	return b.state.lookup(k) != nil
}

// Len returns the number of notes. It never fails and never mutates.
func (b *Binder[K, V]) Len() int {
	if b.state == nil {
		return 0
	}
	return b.state.count
}

// Clear removes every note. An exclusively owned state is emptied in place;
// a shared state is left to its other handles and this handle repoints to
// the canonical empty state, so Clear never deep-copies. Clear on an empty
// binder is a no-op.
func (b *Binder[K, V]) Clear() {
	if b.state == nil {
		return
	}
	if b.state.owner == b {
		b.state.reset()
		return
	}
	b.state = nil
}
