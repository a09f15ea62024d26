package binder

import "errors"

// ErrDuplicateKey is returned when an insert names a key already present.
var ErrDuplicateKey = errors.New("key already exists")

// ErrKeyNotFound is returned when a key doesn't exist in the binder.
var ErrKeyNotFound = errors.New("key not found")

// ErrEmpty is returned by RemoveFront when the binder has no notes.
var ErrEmpty = errors.New("binder is empty")
