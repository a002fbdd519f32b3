package set

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedInsertKeepsOrder(t *testing.T) {
	s := NewOrdered[int]()
	s.Insert(3)
	s.Insert(1)
	s.Insert(2)
	s.Insert(1) // duplicate keeps its original position
	assert.Equal(t, []int{3, 1, 2}, s.Items())
	assert.Equal(t, 3, s.Len())
}

func TestFromSliceOrderedDeduplicates(t *testing.T) {
	s := FromSliceOrdered([]int{5, 3, 2, 3, 5})
	assert.Equal(t, []int{5, 3, 2}, s.Items())
}

func TestOrderedTestAndInsert(t *testing.T) {
	s := NewOrdered[int]()
	assert.False(t, s.TestAndInsert(7))
	assert.True(t, s.TestAndInsert(7))
	assert.Equal(t, 1, s.Len())
}

func TestOrderedRemoveKeepsOtherPositions(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2, 3, 4})
	s.Remove(2)
	assert.Equal(t, []int{1, 3, 4}, s.Items())

	s.Remove(99) // absent, no-op
	assert.Equal(t, []int{1, 3, 4}, s.Items())
}

func TestOrderedReinsertGoesToTail(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2, 3})
	s.Remove(1)
	s.Insert(1)
	assert.Equal(t, []int{2, 3, 1}, s.Items())
}

func TestOrderedTestAndRemove(t *testing.T) {
	s := FromSliceOrdered([]int{5})
	assert.True(t, s.TestAndRemove(9))
	assert.False(t, s.TestAndRemove(5))
	assert.Equal(t, 0, s.Len())
}

func TestOrderedInsertRemoveInverse(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2, 3})
	before := s.Clone()
	s.Insert(99)
	s.Remove(99)
	assert.True(t, s.Equal(before), "order must survive an insert/remove round trip")
}

func TestOrderedEqualIsOrderSensitive(t *testing.T) {
	a := FromSliceOrdered([]int{1, 2, 3})
	b := FromSliceOrdered([]int{1, 2, 3})
	c := FromSliceOrdered([]int{3, 2, 1})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same elements in a different order are not equal")
	assert.False(t, a.Equal(nil))
}

func TestOrderedLookup(t *testing.T) {
	s := NewOrderedFunc[string](
		func(v string) uint64 { return defaultHash(strings.ToLower(v)) },
		strings.EqualFold,
	)
	s.Insert("Hello")
	v, err := s.Lookup("HELLO")
	assert.Nil(t, err)
	assert.Equal(t, "Hello", v)

	_, err = s.Lookup("absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestOrderedResizeKeepsOrder(t *testing.T) {
	s, err := NewOrderedWithCapacity[int](4)
	assert.Nil(t, err)
	want := make([]int, 0, 200)
	for i := 0; i < 200; i++ {
		s.Insert(i)
		want = append(want, i)
	}
	assert.Equal(t, want, s.Items())
	for i := 0; i < 200; i++ {
		assert.True(t, s.Contains(i))
	}
}

func TestOrderedTombstoneChurn(t *testing.T) {
	s, err := NewOrderedWithCapacity[int](8)
	assert.Nil(t, err)
	for round := 0; round < 1000; round++ {
		s.Insert(round)
		s.Remove(round)
	}
	assert.Equal(t, 0, s.Len())
	s.Insert(1)
	s.Insert(2)
	assert.Equal(t, []int{1, 2}, s.Items())
}

func TestOrderedClearAndReset(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2, 3})
	capBefore := len(s.slots)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
	assert.Equal(t, capBefore, len(s.slots))

	s.Insert(9)
	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, defaultCapacity, len(s.slots))
}

func TestOrderedCloneIsDeep(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2, 3})
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c.Remove(2)
	c.Insert(4)
	assert.Equal(t, []int{1, 2, 3}, s.Items())
	assert.Equal(t, []int{1, 3, 4}, c.Items())
}

func TestOrderedIterator(t *testing.T) {
	s := FromSliceOrdered([]string{"c", "a", "b"})
	var got []string
	it := s.Iterator()
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Nil(t, it.Err())
	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestOrderedIteratorIndex(t *testing.T) {
	s := FromSliceOrdered([]string{"x", "y", "z"})
	it := s.Iterator()
	var pairs []string
	for it.Next() {
		pairs = append(pairs, fmt.Sprintf("%d:%s", it.Index(), it.Value()))
	}
	assert.Nil(t, it.Err())
	assert.Equal(t, []string{"0:x", "1:y", "2:z"}, pairs)
}

func TestOrderedIteratorConcurrentModification(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2, 3})
	it := s.Iterator()
	assert.True(t, it.Next())
	s.Remove(3)
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrConcurrentModification)
}

func TestOrderedEach(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2, 3})
	var got []int
	err := s.Each(func(v int) bool {
		got = append(got, v)
		return true
	})
	assert.Nil(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestOrderedSubsetAndDisjoint(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2})
	u := FromSlice([]int{1, 2, 3})
	assert.True(t, s.IsSubsetOf(u))
	assert.True(t, s.IsProperSubsetOf(u))
	assert.False(t, s.Disjoint(u))
	assert.True(t, s.Disjoint(FromSlice([]int{8, 9})))
}

func TestOrderedAlgebraReturnsUnordered(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2, 3})
	u := FromSliceOrdered([]int{3, 4, 5})

	union := s.Union(u)
	assert.True(t, union.Equal(FromSlice([]int{1, 2, 3, 4, 5})))
	assert.True(t, s.Intersect(u).Equal(FromSlice([]int{3})))
	assert.True(t, s.Difference(u).Equal(FromSlice([]int{1, 2})))
	assert.True(t, s.SymmetricDifference(u).Equal(FromSlice([]int{1, 2, 4, 5})))

	// operands untouched, still ordered
	assert.Equal(t, []int{1, 2, 3}, s.Items())
	assert.Equal(t, []int{3, 4, 5}, u.Items())
}

func TestOrderedInsertAllRemoveAll(t *testing.T) {
	s := FromSliceOrdered([]int{1, 2})
	s.InsertAll(FromSliceOrdered([]int{3, 4}))
	assert.Equal(t, []int{1, 2, 3, 4}, s.Items())

	s.RemoveAll(FromSlice([]int{2, 3}))
	assert.Equal(t, []int{1, 4}, s.Items())
}

func TestMapOrderedKeepsOrder(t *testing.T) {
	s := FromSliceOrdered([]string{"bb", "a", "ccc"})
	lens := MapOrdered(s, func(v string) int { return len(v) })
	assert.Equal(t, []int{2, 1, 3}, lens.Items())

	// non-injective fn keeps the position of the first producer
	s2 := FromSliceOrdered([]int{1, 2, 3, 4})
	halves := MapOrdered(s2, func(v int) int { return v / 2 })
	assert.Equal(t, []int{0, 1, 2}, halves.Items())
}

func TestOrderedZeroValueReads(t *testing.T) {
	var s OrderedSet[int]
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))
	assert.Empty(t, s.Items())

	it := s.Iterator()
	assert.False(t, it.Next())
	assert.Nil(t, it.Err())
}

func TestOrderedString(t *testing.T) {
	s := FromSliceOrdered([]int{3, 1, 2})
	assert.Equal(t, "OrderedSet{3, 1, 2}", s.String())
	assert.Equal(t, "OrderedSet{}", NewOrdered[int]().String())
}
