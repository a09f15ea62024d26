// Package binder provides an ordered, keyed, in-memory container with
// copy-on-write value semantics: duplicating a binder with Copy is O(1),
// and the duplicate shares storage with the original until either side
// mutates, at which point the mutating side takes a private deep copy.
//
// # Overview
//
// A binder holds notes — key/value pairs — in an explicit sequence order.
// Notes are inserted positionally (at the front, or immediately after an
// existing key), removed by key or from the front, and read by key in
// O(log n). Iteration walks the sequence in order, front to back.
//
// # Architecture
//
// Every handle points at one shared state:
//
//	┌──────────────┐      ┌──────────────┐
//	│  Binder b1   │      │  Binder b2   │   (b2 = b1.Copy())
//	└──────┬───────┘      └──────┬───────┘
//	       │        shared       │
//	       ▼                     ▼
//	┌─────────────────────────────────────┐
//	│                state                │
//	├─────────────────────────────────────┤
//	│  sequence   - ordered list of notes │
//	│  finder     - B-tree, key → note    │
//	│  count      - cached length         │
//	│  owner      - in-place write tag    │
//	└─────────────────────────────────────┘
//
// The sequence carries the positional order; the finder locates a note by
// key without scanning. The two views are kept consistent under every
// operation: an operation either applies its full sequence+finder+count
// change or none of it.
//
// # Copy-on-write
//
// Copy marks the state shared and hands out a second handle. A mutating
// operation (InsertFront, InsertAfter, Remove, RemoveFront, GetMutable,
// Clear) first validates against the current state, then checks whether the
// handle still owns its state exclusively. If it does, the mutation lands in
// place. If not, the operation builds a complete deep copy — same order,
// same pairs, a freshly rebuilt finder — applies the change to the copy, and
// only then repoints the handle. A failed operation therefore never leaves a
// partial change visible, and sibling handles never observe each other's
// mutations.
//
// Read-only operations (Get, Has, Len, iteration) never clone and never
// mutate.
//
// # Iteration
//
// Iter, All, Keys and Values observe the state the binder held at the moment
// they were called. If the binder later copy-on-writes to a new state, an
// outstanding iterator keeps the old version alive and finishes over it
// unchanged. The one unsupported pattern is mutating a binder while
// iterating that same binder: when the handle owns its state exclusively the
// mutation lands in the state being walked, and the iterator's view of the
// remainder is unspecified.
//
// # Concurrency
//
// A binder performs no internal locking. It is safe for single-goroutine
// use, or for multi-goroutine use where each goroutine works with handles
// that never share a state concurrently with a writer. Two goroutines
// holding copies of one binder must synchronize externally before either
// mutates.
//
// # Errors
//
// Operations report failures through three sentinels, checked with
// errors.Is:
//
//   - ErrDuplicateKey - insert of a key already present
//   - ErrKeyNotFound  - lookup, removal, or insert-after of an absent key
//   - ErrEmpty        - RemoveFront on an empty binder
//
// # Usage
//
//	b := binder.New[string, int]()
//	b.InsertFront("b", 2)
//	b.InsertFront("a", 1)
//	b.InsertAfter("a", "c", 3) // a, c, b
//
//	snap := b.Copy() // O(1); shares storage
//	b.Remove("a")    // b clones; snap still sees a, c, b
//
//	for k, v := range b.All() {
//	    fmt.Println(k, v)
//	}
package binder
