package list

import "errors"

var ErrDetachedNode = errors.New("list: node does not belong to this list")

// Node is a single element of a List. The Value field is freely mutable;
// the links are managed by the owning list.
type Node[T any] struct {
	prev, next *Node[T]
	owner      *List[T]
	Value      T
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *Node[T]
	length     int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// PushHead prepends value and returns its node.
func (l *List[T]) PushHead(value T) *Node[T] {
	node := &Node[T]{Value: value, owner: l}
	if l.head == nil {
		l.head, l.tail = node, node
	} else {
		node.next, l.head.prev, l.head = l.head, node, node
	}
	l.length++
	return node
}

// PushTail appends value and returns its node. The returned node stays valid
// until it is removed, so callers may keep it as an O(1) handle for Remove.
func (l *List[T]) PushTail(value T) *Node[T] {
	node := &Node[T]{Value: value, owner: l}
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		node.prev, l.tail.next, l.tail = l.tail, node, node
	}
	l.length++
	return node
}

// Remove unlinks node from the list. Removing a node that belongs to another
// list, or one that was already removed, returns ErrDetachedNode.
func (l *List[T]) Remove(node *Node[T]) error {
	if node == nil || node.owner != l {
		return ErrDetachedNode
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.next, node.prev, node.owner = nil, nil, nil
	l.length--
	return nil
}

// Clear unlinks every node, leaving an empty list.
func (l *List[T]) Clear() {
	current := l.head
	for current != nil {
		next := current.next
		current.prev, current.next, current.owner = nil, nil, nil
		current = next
	}
	l.head, l.tail = nil, nil
	l.length = 0
}

// Values collects node values from head to tail.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.Value)
	}
	return values
}
