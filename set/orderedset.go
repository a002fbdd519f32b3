package set

import (
	"fmt"
	"strings"

	"github.com/fzft/go-genset/list"
)

type orderedSlot[T any] struct {
	state slotState
	node  *list.Node[T]
}

// OrderedSet is a set that iterates in first-insertion order. Membership is
// tracked by the same open-addressed table as HashSet; occupied slots hold
// handles into a doubly linked order list, so removal splices the order list
// in O(1). Re-inserting a present element does not move it.
//
// The zero value supports Len, Contains, Items and iteration; use a
// constructor before mutating.
type OrderedSet[T any] struct {
	slots      []orderedSlot[T]
	order      list.List[T]
	count      int
	tombstones int
	version    uint64
	hash       HashFunc[T]
	equal      EqualFunc[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

// NewOrdered returns an empty OrderedSet with the default capacity and the
// default hash and equality capability.
func NewOrdered[T comparable]() *OrderedSet[T] {
	return NewOrderedFunc[T](defaultHash[T], defaultEqual[T])
}

// NewOrderedWithCapacity is NewOrdered with an explicit initial capacity,
// rounded up to a power of two. Non-positive capacities are rejected with
// ErrInvalidCapacity.
func NewOrderedWithCapacity[T comparable](capacity int) (*OrderedSet[T], error) {
	return NewOrderedFuncWithCapacity[T](defaultHash[T], defaultEqual[T], capacity)
}

// NewOrderedFunc returns an empty OrderedSet using the given hash and
// equality capability.
func NewOrderedFunc[T any](hash HashFunc[T], equal EqualFunc[T]) *OrderedSet[T] {
	s, _ := NewOrderedFuncWithCapacity(hash, equal, defaultCapacity)
	return s
}

// NewOrderedFuncWithCapacity is NewOrderedFunc with an explicit initial capacity.
func NewOrderedFuncWithCapacity[T any](hash HashFunc[T], equal EqualFunc[T], capacity int) (*OrderedSet[T], error) {
	n, err := normalizeCapacity(capacity)
	if err != nil {
		return nil, err
	}
	return &OrderedSet[T]{
		slots: make([]orderedSlot[T], n),
		hash:  hash,
		equal: equal,
	}, nil
}

// FromSliceOrdered builds an OrderedSet from items. Duplicates are ignored;
// each element keeps the position of its first occurrence.
func FromSliceOrdered[T comparable](items []T) *OrderedSet[T] {
	s := NewOrdered[T]()
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Len returns the number of elements. Safe on the zero value.
func (s *OrderedSet[T]) Len() int {
	return s.count
}

// Contains reports whether an element equal to key is present.
func (s *OrderedSet[T]) Contains(key T) bool {
	return s.find(key) >= 0
}

// Lookup returns the stored element equal to key, or ErrKeyNotFound.
func (s *OrderedSet[T]) Lookup(key T) (T, error) {
	if i := s.find(key); i >= 0 {
		return s.slots[i].node.Value, nil
	}
	var zero T
	return zero, ErrKeyNotFound
}

// Insert adds key at the end of the insertion order. No-op if an equal
// element is already present; its position is kept.
func (s *OrderedSet[T]) Insert(key T) {
	s.TestAndInsert(key)
}

// TestAndInsert reports whether key was already present; if it was not, it
// is appended to the insertion order.
func (s *OrderedSet[T]) TestAndInsert(key T) bool {
	if s.find(key) >= 0 {
		return true
	}
	s.place(key)
	return false
}

// InsertAll inserts every element of other, in other's Items order.
func (s *OrderedSet[T]) InsertAll(other Set[T]) {
	for _, item := range other.Items() {
		s.Insert(item)
	}
}

// Remove deletes the element equal to key, splicing it out of the insertion
// order. No-op if absent. Capacity is sticky until Reset.
func (s *OrderedSet[T]) Remove(key T) {
	s.TestAndRemove(key)
}

// TestAndRemove reports whether key was absent; if it was present, it has
// been removed.
func (s *OrderedSet[T]) TestAndRemove(key T) bool {
	i := s.find(key)
	if i < 0 {
		return true
	}
	s.removeAt(i)
	return false
}

// RemoveAll removes every element of s that is present in other.
func (s *OrderedSet[T]) RemoveAll(other Set[T]) {
	for _, item := range other.Items() {
		s.Remove(item)
	}
}

// Clear removes all elements, keeping the current capacity.
func (s *OrderedSet[T]) Clear() {
	for i := range s.slots {
		s.slots[i] = orderedSlot[T]{}
	}
	s.order.Clear()
	s.count, s.tombstones = 0, 0
	s.version++
}

// Reset discards all elements and reallocates the table at the default
// capacity.
func (s *OrderedSet[T]) Reset() {
	s.slots = make([]orderedSlot[T], defaultCapacity)
	s.order.Clear()
	s.count, s.tombstones = 0, 0
	s.version++
}

// Items returns the elements in insertion order.
func (s *OrderedSet[T]) Items() []T {
	return s.order.Values()
}

// Clone returns an independent deep copy. The order list is relinked, so the
// copy shares no nodes with s.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	c := &OrderedSet[T]{
		hash:  s.hash,
		equal: s.equal,
	}
	if s.slots != nil {
		c.slots = make([]orderedSlot[T], len(s.slots))
	}
	for n := s.order.Head(); n != nil; n = n.Next() {
		c.place(n.Value)
	}
	return c
}

// Equal reports whether s and other hold the same elements in the same
// insertion order. Unlike HashSet.Equal, order matters.
func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	if other == nil || s.count != other.count {
		return false
	}
	a, b := s.order.Head(), other.order.Head()
	for a != nil {
		if !s.equal(a.Value, b.Value) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}

// IsSubsetOf reports whether every element of s is in other. Order plays no
// part in the subset relations.
func (s *OrderedSet[T]) IsSubsetOf(other Set[T]) bool {
	return subsetOf[T](s, other)
}

// IsProperSubsetOf reports whether s is a subset of other and other has at
// least one element not in s.
func (s *OrderedSet[T]) IsProperSubsetOf(other Set[T]) bool {
	return s.count < other.Len() && subsetOf[T](s, other)
}

// Disjoint reports whether s and other share no element.
func (s *OrderedSet[T]) Disjoint(other Set[T]) bool {
	return disjoint[T](s, other)
}

// Union returns an unordered set with the elements of s and other. Algebraic
// results carry no meaningful order, so all four algebra methods return a
// HashSet built with s's capability.
func (s *OrderedSet[T]) Union(other Set[T]) *HashSet[T] {
	result := NewFunc(s.hash, s.equal)
	result.InsertAll(s)
	result.InsertAll(other)
	return result
}

// Intersect returns an unordered set with the elements present in both.
func (s *OrderedSet[T]) Intersect(other Set[T]) *HashSet[T] {
	result := NewFunc(s.hash, s.equal)
	for n := s.order.Head(); n != nil; n = n.Next() {
		if other.Contains(n.Value) {
			result.Insert(n.Value)
		}
	}
	return result
}

// Difference returns an unordered set with the elements of s not in other.
func (s *OrderedSet[T]) Difference(other Set[T]) *HashSet[T] {
	result := NewFunc(s.hash, s.equal)
	for n := s.order.Head(); n != nil; n = n.Next() {
		if !other.Contains(n.Value) {
			result.Insert(n.Value)
		}
	}
	return result
}

// SymmetricDifference returns an unordered set with the elements present in
// exactly one of s and other.
func (s *OrderedSet[T]) SymmetricDifference(other Set[T]) *HashSet[T] {
	result := s.Difference(other)
	for _, item := range other.Items() {
		if !s.Contains(item) {
			result.Insert(item)
		}
	}
	return result
}

// String renders the contents in insertion order for debugging. The exact
// form is not part of the compatibility contract.
func (s *OrderedSet[T]) String() string {
	var b strings.Builder
	b.WriteString("OrderedSet{")
	for n := s.order.Head(); n != nil; n = n.Next() {
		if n != s.order.Head() {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", n.Value)
	}
	b.WriteByte('}')
	return b.String()
}

func (s *OrderedSet[T]) find(key T) int {
	if s.count == 0 {
		return -1
	}
	mask := uint64(len(s.slots) - 1)
	i := s.hash(key) & mask
	for {
		switch s.slots[i].state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.equal(s.slots[i].node.Value, key) {
				return int(i)
			}
		}
		i = (i + 1) & mask
	}
}

// place appends key, which must not already be present.
func (s *OrderedSet[T]) place(key T) {
	s.ensureRoom()
	mask := uint64(len(s.slots) - 1)
	i := s.hash(key) & mask
	for s.slots[i].state == slotOccupied {
		i = (i + 1) & mask
	}
	if s.slots[i].state == slotTombstone {
		s.tombstones--
	}
	s.slots[i] = orderedSlot[T]{state: slotOccupied, node: s.order.PushTail(key)}
	s.count++
	s.version++
}

func (s *OrderedSet[T]) removeAt(i int) {
	s.order.Remove(s.slots[i].node)
	s.slots[i] = orderedSlot[T]{state: slotTombstone}
	s.count--
	s.tombstones++
	s.version++
}

func (s *OrderedSet[T]) ensureRoom() {
	if len(s.slots) == 0 {
		s.slots = make([]orderedSlot[T], defaultCapacity)
		return
	}
	if float64(s.count+s.tombstones+1) <= loadFactor*float64(len(s.slots)) {
		return
	}
	newCap := len(s.slots)
	if float64(s.count+1) > loadFactor*float64(newCap)/2 {
		newCap *= 2
	}
	s.rehash(newCap)
}

// rehash reseats every live node in a fresh table. The order list itself is
// untouched; only the table references move.
func (s *OrderedSet[T]) rehash(newCap int) {
	s.slots = make([]orderedSlot[T], newCap)
	s.tombstones = 0
	mask := uint64(newCap - 1)
	for n := s.order.Head(); n != nil; n = n.Next() {
		i := s.hash(n.Value) & mask
		for s.slots[i].state == slotOccupied {
			i = (i + 1) & mask
		}
		s.slots[i] = orderedSlot[T]{state: slotOccupied, node: n}
	}
}
