package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewList(t *testing.T) {
	l := New[int]()
	assert.Nil(t, l.Head())
	assert.Nil(t, l.Tail())
	assert.Equal(t, 0, l.Len())
}

func TestPushHead(t *testing.T) {
	l := New[int]()
	n := l.PushHead(5)
	assert.Equal(t, 5, n.Value)
	assert.Same(t, n, l.Head())
	assert.Same(t, n, l.Tail())
	assert.Equal(t, 1, l.Len())

	l.PushHead(3)
	assert.Equal(t, 3, l.Head().Value)
	assert.Equal(t, 5, l.Tail().Value)
}

func TestPushTail(t *testing.T) {
	l := New[int]()
	l.PushTail(5)
	l.PushTail(10)
	assert.Equal(t, 5, l.Head().Value)
	assert.Equal(t, 10, l.Tail().Value)
	assert.Equal(t, 2, l.Len())
}

func TestRemoveHeadNode(t *testing.T) {
	l := New[int]()
	head := l.PushTail(5)
	l.PushTail(10)
	err := l.Remove(head)
	assert.Nil(t, err)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 10, l.Head().Value)
	assert.Equal(t, 10, l.Tail().Value)
}

func TestRemoveMiddleNode(t *testing.T) {
	l := New[int]()
	l.PushTail(1)
	mid := l.PushTail(2)
	l.PushTail(3)
	assert.Nil(t, l.Remove(mid))
	assert.Equal(t, []int{1, 3}, l.Values())
}

func TestRemoveDetachedNode(t *testing.T) {
	l := New[int]()
	n := l.PushTail(5)
	assert.Nil(t, l.Remove(n))
	assert.ErrorIs(t, l.Remove(n), ErrDetachedNode, "second removal must fail")

	other := New[int]()
	m := other.PushTail(7)
	assert.ErrorIs(t, l.Remove(m), ErrDetachedNode, "foreign node must be rejected")
}

func TestClear(t *testing.T) {
	l := New[int]()
	n := l.PushTail(5)
	l.PushTail(10)
	l.Clear()
	assert.Nil(t, l.Head())
	assert.Nil(t, l.Tail())
	assert.Equal(t, 0, l.Len())
	assert.ErrorIs(t, l.Remove(n), ErrDetachedNode)
}

func TestValues(t *testing.T) {
	l := New[string]()
	l.PushTail("a")
	l.PushTail("b")
	l.PushTail("c")
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())
}

func TestNodeLinks(t *testing.T) {
	l := New[int]()
	a := l.PushTail(1)
	b := l.PushTail(2)
	assert.Same(t, b, a.Next())
	assert.Same(t, a, b.Prev())
	assert.Nil(t, a.Prev())
	assert.Nil(t, b.Next())
}

func TestZeroValueList(t *testing.T) {
	var l List[int]
	l.PushTail(1)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, []int{1}, l.Values())
}
