package set

import "errors"

var (
	// ErrEmptyContainer is returned by operations that must yield an element
	// when the set has none.
	ErrEmptyContainer = errors.New("set: empty container")

	// ErrKeyNotFound is returned by Lookup when no stored element equals the key.
	ErrKeyNotFound = errors.New("set: key not found")

	// ErrConcurrentModification is reported by an iterator whose set was
	// mutated after the iterator was created.
	ErrConcurrentModification = errors.New("set: concurrent modification during iteration")

	// ErrInvalidCapacity is returned by constructors given a non-positive capacity.
	ErrInvalidCapacity = errors.New("set: capacity must be positive")
)
