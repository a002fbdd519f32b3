package set

import (
	"fmt"
	"math/rand"
	"strings"
)

type slot[T any] struct {
	state slotState
	key   T
}

// HashSet is an unordered set backed by an open-addressed hash table with
// linear probing. The slot array length is always a power of two and the
// load factor (occupied plus tombstone slots) never exceeds loadFactor after
// a mutation.
//
// The zero value supports Len, Contains, Items and iteration; use a
// constructor before mutating so the hash and equality capability is bound.
type HashSet[T any] struct {
	slots      []slot[T]
	count      int
	tombstones int
	version    uint64
	hash       HashFunc[T]
	equal      EqualFunc[T]
}

var _ Set[int] = (*HashSet[int])(nil)

// New returns an empty HashSet with the default capacity, hashing elements
// by their fmt rendering and comparing them with ==.
func New[T comparable]() *HashSet[T] {
	return NewFunc[T](defaultHash[T], defaultEqual[T])
}

// NewWithCapacity is New with an explicit initial capacity, rounded up to a
// power of two. Non-positive capacities are rejected with ErrInvalidCapacity.
func NewWithCapacity[T comparable](capacity int) (*HashSet[T], error) {
	return NewFuncWithCapacity[T](defaultHash[T], defaultEqual[T], capacity)
}

// NewFunc returns an empty HashSet using the given hash and equality
// capability. hash must be consistent with equal: equal elements hash equally.
func NewFunc[T any](hash HashFunc[T], equal EqualFunc[T]) *HashSet[T] {
	s, _ := NewFuncWithCapacity(hash, equal, defaultCapacity)
	return s
}

// NewFuncWithCapacity is NewFunc with an explicit initial capacity.
func NewFuncWithCapacity[T any](hash HashFunc[T], equal EqualFunc[T], capacity int) (*HashSet[T], error) {
	n, err := normalizeCapacity(capacity)
	if err != nil {
		return nil, err
	}
	return &HashSet[T]{
		slots: make([]slot[T], n),
		hash:  hash,
		equal: equal,
	}, nil
}

// FromSlice builds a HashSet from the elements of items, ignoring duplicates.
func FromSlice[T comparable](items []T) *HashSet[T] {
	s := New[T]()
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Len returns the number of elements. Safe on the zero value.
func (s *HashSet[T]) Len() int {
	return s.count
}

// Contains reports whether an element equal to key is present.
func (s *HashSet[T]) Contains(key T) bool {
	return s.find(key) >= 0
}

// Lookup returns the stored element equal to key. Useful when the hash and
// equality capability ignores fields the caller wants back. Returns
// ErrKeyNotFound if no such element exists.
func (s *HashSet[T]) Lookup(key T) (T, error) {
	if i := s.find(key); i >= 0 {
		return s.slots[i].key, nil
	}
	var zero T
	return zero, ErrKeyNotFound
}

// Insert adds key to the set. No-op if an equal element is already present.
func (s *HashSet[T]) Insert(key T) {
	s.TestAndInsert(key)
}

// TestAndInsert reports whether key was already present; if it was not, it
// is inserted.
func (s *HashSet[T]) TestAndInsert(key T) bool {
	if s.find(key) >= 0 {
		return true
	}
	s.place(key)
	return false
}

// InsertAll inserts every element of other. Union in place; other may be
// either set variant.
func (s *HashSet[T]) InsertAll(other Set[T]) {
	for _, item := range other.Items() {
		s.Insert(item)
	}
}

// Remove deletes the element equal to key. No-op if absent. Capacity is
// never shrunk by removal; it is sticky until Reset.
func (s *HashSet[T]) Remove(key T) {
	s.TestAndRemove(key)
}

// TestAndRemove reports whether key was absent; if it was present, it has
// been removed.
func (s *HashSet[T]) TestAndRemove(key T) bool {
	i := s.find(key)
	if i < 0 {
		return true
	}
	s.removeAt(i)
	return false
}

// RemoveAll removes every element of s that is present in other. Difference
// in place; other may be either set variant.
func (s *HashSet[T]) RemoveAll(other Set[T]) {
	for _, item := range other.Items() {
		s.Remove(item)
	}
}

// Pop removes and returns an element chosen by internal table order from a
// random starting slot. Returns ErrEmptyContainer on an empty set.
func (s *HashSet[T]) Pop() (T, error) {
	if s.count == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	mask := len(s.slots) - 1
	i := rand.Intn(len(s.slots))
	for s.slots[i].state != slotOccupied {
		i = (i + 1) & mask
	}
	key := s.slots[i].key
	s.removeAt(i)
	return key, nil
}

// Clear removes all elements, keeping the current capacity.
func (s *HashSet[T]) Clear() {
	for i := range s.slots {
		s.slots[i] = slot[T]{}
	}
	s.count, s.tombstones = 0, 0
	s.version++
}

// Reset discards all elements and reallocates the table at the default
// capacity, as if the set had just been constructed.
func (s *HashSet[T]) Reset() {
	s.slots = make([]slot[T], defaultCapacity)
	s.count, s.tombstones = 0, 0
	s.version++
}

// Items returns the elements in unspecified order.
func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, s.count)
	for i := range s.slots {
		if s.slots[i].state == slotOccupied {
			items = append(items, s.slots[i].key)
		}
	}
	return items
}

// Clone returns an independent deep copy sharing no storage with s.
func (s *HashSet[T]) Clone() *HashSet[T] {
	c := &HashSet[T]{
		count:      s.count,
		tombstones: s.tombstones,
		hash:       s.hash,
		equal:      s.equal,
	}
	if s.slots != nil {
		c.slots = make([]slot[T], len(s.slots))
		copy(c.slots, s.slots)
	}
	return c
}

// Equal reports whether s and other contain the same elements. Order is
// irrelevant; other may be either set variant.
func (s *HashSet[T]) Equal(other Set[T]) bool {
	if other == nil || s.count != other.Len() {
		return false
	}
	return subsetOf[T](s, other)
}

// IsSubsetOf reports whether every element of s is in other.
func (s *HashSet[T]) IsSubsetOf(other Set[T]) bool {
	return subsetOf[T](s, other)
}

// IsProperSubsetOf reports whether s is a subset of other and other has at
// least one element not in s.
func (s *HashSet[T]) IsProperSubsetOf(other Set[T]) bool {
	return s.count < other.Len() && subsetOf[T](s, other)
}

// Disjoint reports whether s and other share no element.
func (s *HashSet[T]) Disjoint(other Set[T]) bool {
	return disjoint[T](s, other)
}

// Union returns a new set with the elements of s and other.
func (s *HashSet[T]) Union(other Set[T]) *HashSet[T] {
	result := s.Clone()
	result.InsertAll(other)
	return result
}

// Intersect returns a new set with the elements present in both s and other.
func (s *HashSet[T]) Intersect(other Set[T]) *HashSet[T] {
	result := s.emptyLike()
	for i := range s.slots {
		if s.slots[i].state == slotOccupied && other.Contains(s.slots[i].key) {
			result.place(s.slots[i].key)
		}
	}
	return result
}

// Difference returns a new set with the elements of s not present in other.
func (s *HashSet[T]) Difference(other Set[T]) *HashSet[T] {
	result := s.emptyLike()
	for i := range s.slots {
		if s.slots[i].state == slotOccupied && !other.Contains(s.slots[i].key) {
			result.place(s.slots[i].key)
		}
	}
	return result
}

// SymmetricDifference returns a new set with the elements present in exactly
// one of s and other.
func (s *HashSet[T]) SymmetricDifference(other Set[T]) *HashSet[T] {
	result := s.Difference(other)
	for _, item := range other.Items() {
		if !s.Contains(item) {
			result.Insert(item)
		}
	}
	return result
}

// String renders the contents for debugging. The exact form is not part of
// the compatibility contract.
func (s *HashSet[T]) String() string {
	var b strings.Builder
	b.WriteString("HashSet{")
	first := true
	for i := range s.slots {
		if s.slots[i].state != slotOccupied {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", s.slots[i].key)
		first = false
	}
	b.WriteByte('}')
	return b.String()
}

// find returns the slot index holding an element equal to key, or -1.
func (s *HashSet[T]) find(key T) int {
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
			if s.equal(s.slots[i].key, key) {
				return int(i)
			}
		}
		i = (i + 1) & mask
	}
}

// place inserts key, which must not already be present.
func (s *HashSet[T]) place(key T) {
	s.ensureRoom()
	mask := uint64(len(s.slots) - 1)
	i := s.hash(key) & mask
	for s.slots[i].state == slotOccupied {
		i = (i + 1) & mask
	}
	if s.slots[i].state == slotTombstone {
		s.tombstones--
	}
	s.slots[i] = slot[T]{state: slotOccupied, key: key}
	s.count++
	s.version++
}

func (s *HashSet[T]) removeAt(i int) {
	s.slots[i] = slot[T]{state: slotTombstone}
	s.count--
	s.tombstones++
	s.version++
}

// ensureRoom keeps the load factor below the threshold before a placement.
// Growth always doubles; a table dominated by tombstone debris is rehashed
// at the same capacity instead, so capacity never grows from deletions alone.
func (s *HashSet[T]) ensureRoom() {
	if len(s.slots) == 0 {
		s.slots = make([]slot[T], defaultCapacity)
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

// rehash reinserts every live element into a fresh table, discarding
// tombstones.
func (s *HashSet[T]) rehash(newCap int) {
	old := s.slots
	s.slots = make([]slot[T], newCap)
	s.tombstones = 0
	mask := uint64(newCap - 1)
	for _, sl := range old {
		if sl.state != slotOccupied {
			continue
		}
		i := s.hash(sl.key) & mask
		for s.slots[i].state == slotOccupied {
			i = (i + 1) & mask
		}
		s.slots[i] = slot[T]{state: slotOccupied, key: sl.key}
	}
}

// emptyLike returns an empty set with s's capability and default capacity.
func (s *HashSet[T]) emptyLike() *HashSet[T] {
	return &HashSet[T]{
		slots: make([]slot[T], defaultCapacity),
		hash:  s.hash,
		equal: s.equal,
	}
}
