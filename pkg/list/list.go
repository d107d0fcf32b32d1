// Package list implements the singly linked list used to hold discovered
// paths and the filter pipeline.
package list

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list with head and tail pointers. The zero value
// is an empty list ready to use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	n    int
}

// New returns an empty list holding vs in order.
func New[T any](vs ...T) *List[T] {
	l := &List[T]{}
	for _, v := range vs {
		l.Append(v)
	}
	return l
}

// Append adds v after the current last element.
func (l *List[T]) Append(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.n++
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the last element.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Filter removes, in a single pass, every element for which keep returns
// false. keep sees each element once, in insertion order, and survivors keep
// their relative order. When release is non-nil it is called once with the
// value of every removed element. Filter returns the number of removed
// elements.
func (l *List[T]) Filter(keep func(T) bool, release func(T)) int {
	removed := 0
	var prev *node[T]
	curr := l.head
	for curr != nil {
		next := curr.next
		if keep(curr.value) {
			prev = curr
			curr = next
			continue
		}

		if curr == l.head {
			l.head = next
		}
		if curr == l.tail {
			l.tail = prev
		}
		if prev != nil {
			prev.next = next
		}
		l.n--
		removed++
		drop(curr, release)
		curr = next
	}
	return removed
}

// Each calls fn for every element in order. fn must not modify the list.
func (l *List[T]) Each(fn func(T)) {
	for curr := l.head; curr != nil; curr = curr.next {
		fn(curr.value)
	}
}

// All returns an iterator over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := l.head; curr != nil; curr = curr.next {
			if !yield(curr.value) {
				return
			}
		}
	}
}

// Values returns the elements as a slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.n)
	for curr := l.head; curr != nil; curr = curr.next {
		out = append(out, curr.value)
	}
	return out
}

// Destroy releases every node, calling release (if non-nil) with each value.
// The list is empty afterwards and may be reused.
func (l *List[T]) Destroy(release func(T)) {
	curr := l.head
	l.head, l.tail, l.n = nil, nil, 0
	for curr != nil {
		next := curr.next
		drop(curr, release)
		curr = next
	}
}

// drop unlinks n and clears its payload so the value is not retained by a
// stray reference to the node.
func drop[T any](n *node[T], release func(T)) {
	v := n.value
	var zero T
	n.value = zero
	n.next = nil
	if release != nil {
		release(v)
	}
}
