// Package set provides generic hash-based set containers: an unordered
// HashSet and an insertion-order-preserving OrderedSet. Both are backed by an
// open-addressed table with power-of-two capacity and are not safe for
// concurrent use without external synchronization.
package set

const (
	defaultCapacity = 64
	loadFactor      = 0.7
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// Set is the read-only capability shared by both set variants. Operations
// that accept either variant (InsertAll, RemoveAll, the algebra methods)
// take a Set rather than a concrete type.
type Set[T any] interface {
	Len() int
	Contains(key T) bool
	// Items returns a snapshot of the elements. For an OrderedSet the
	// snapshot is in insertion order; for a HashSet the order is undefined.
	Items() []T
}

// subsetOf reports whether every element of s is in t.
func subsetOf[T any](s, t Set[T]) bool {
	if s.Len() > t.Len() {
		return false
	}
	for _, item := range s.Items() {
		if !t.Contains(item) {
			return false
		}
	}
	return true
}

// disjoint reports whether s and t share no element. Iterates the smaller set.
func disjoint[T any](s, t Set[T]) bool {
	if t.Len() < s.Len() {
		s, t = t, s
	}
	for _, item := range s.Items() {
		if t.Contains(item) {
			return false
		}
	}
	return true
}
