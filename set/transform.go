package set

// Map applies fn to every element of s and collects the results into a new
// HashSet with the default capability for U. A non-injective fn deduplicates.
func Map[T any, U comparable](s Set[T], fn func(item T) U) *HashSet[U] {
	result := New[U]()
	for _, item := range s.Items() {
		result.Insert(fn(item))
	}
	return result
}

// MapOrdered is Map for an OrderedSet source: results keep the order of
// their first producing element.
func MapOrdered[T any, U comparable](s *OrderedSet[T], fn func(item T) U) *OrderedSet[U] {
	result := NewOrdered[U]()
	for n := s.order.Head(); n != nil; n = n.Next() {
		result.Insert(fn(n.Value))
	}
	return result
}
