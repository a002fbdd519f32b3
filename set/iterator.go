package set

import "github.com/fzft/go-genset/list"

// Iterator is a cursor over a HashSet in unspecified order.
//
//	it := s.Iterator()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// Mutating the set while an iterator is live invalidates it: the next Next
// returns false and Err reports ErrConcurrentModification. Iteration is
// restartable by taking a fresh Iterator.
type Iterator[T any] struct {
	set     *HashSet[T]
	idx     int
	version uint64
	value   T
	err     error
}

// Iterator returns a cursor positioned before the first element.
func (s *HashSet[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{set: s, version: s.version}
}

// Next advances to the next element, reporting false at the end or on error.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.set.version != it.version {
		it.err = ErrConcurrentModification
		return false
	}
	for it.idx < len(it.set.slots) {
		sl := &it.set.slots[it.idx]
		it.idx++
		if sl.state == slotOccupied {
			it.value = sl.key
			return true
		}
	}
	return false
}

// Value returns the element produced by the last successful Next.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Err returns ErrConcurrentModification if the set was mutated during the
// traversal, nil otherwise.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Each calls fn for every element until fn returns false. Returns
// ErrConcurrentModification if fn mutated the set.
func (s *HashSet[T]) Each(fn func(item T) bool) error {
	it := s.Iterator()
	for it.Next() {
		if !fn(it.Value()) {
			return nil
		}
	}
	return it.Err()
}

// OrderedIterator is a cursor over an OrderedSet, head to tail in insertion
// order. Index reports the 0-based position of the current element, so an
// enumerate traversal is:
//
//	it := s.Iterator()
//	for it.Next() {
//		use(it.Index(), it.Value())
//	}
//
// Semantics otherwise match Iterator: mutation invalidates the cursor and is
// reported by Err.
type OrderedIterator[T any] struct {
	set     *OrderedSet[T]
	node    *list.Node[T]
	index   int
	version uint64
	value   T
	err     error
}

// Iterator returns a cursor positioned before the first-inserted element.
func (s *OrderedSet[T]) Iterator() *OrderedIterator[T] {
	return &OrderedIterator[T]{set: s, node: s.order.Head(), version: s.version, index: -1}
}

// Next advances to the next element, reporting false at the end or on error.
func (it *OrderedIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.set.version != it.version {
		it.err = ErrConcurrentModification
		return false
	}
	if it.node == nil {
		return false
	}
	it.value = it.node.Value
	it.node = it.node.Next()
	it.index++
	return true
}

// Value returns the element produced by the last successful Next.
func (it *OrderedIterator[T]) Value() T {
	return it.value
}

// Index returns the 0-based insertion-order position of Value.
func (it *OrderedIterator[T]) Index() int {
	return it.index
}

// Err returns ErrConcurrentModification if the set was mutated during the
// traversal, nil otherwise.
func (it *OrderedIterator[T]) Err() error {
	return it.err
}

// Each calls fn for every element in insertion order until fn returns false.
func (s *OrderedSet[T]) Each(fn func(item T) bool) error {
	it := s.Iterator()
	for it.Next() {
		if !fn(it.Value()) {
			return nil
		}
	}
	return it.Err()
}
