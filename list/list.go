package list

import "iter"

// Element is a single link of a List. The Value field is freely mutable;
// the link structure is owned by the list.
type Element[T any] struct {
	Value T
	next  *Element[T]
}

// Next returns the successor element, or nil at the end of the list.
func (e *Element[T]) Next() *Element[T] {
	if e == nil {
		return nil
	}
	return e.next
}

// List is a singly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head   *Element[T]
	tail   *Element[T]
	length int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty returns true if the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// First returns the head element, or nil for an empty list.
func (l *List[T]) First() *Element[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Last returns the tail element, or nil for an empty list.
func (l *List[T]) Last() *Element[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// At returns the element at position i, counting from 0, or nil if i is out
// of range. This walks the chain and costs O(i).
func (l *List[T]) At(i int) *Element[T] {
	if l == nil || i < 0 || i >= l.length {
		return nil
	}
	e := l.head
	for ; i > 0; i-- {
		e = e.next
	}
	return e
}

// PushFront prepends v and returns its element.
func (l *List[T]) PushFront(v T) *Element[T] {
	if l == nil {
		return nil
	}
	e := &Element[T]{Value: v, next: l.head}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.length++
	return e
}

// PushBack appends v and returns its element.
func (l *List[T]) PushBack(v T) *Element[T] {
	if l == nil {
		return nil
	}
	e := &Element[T]{Value: v}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.length++
	return e
}

// RemoveFirst unlinks the head element and returns its value. The second
// return value is false if the list was empty.
func (l *List[T]) RemoveFirst() (T, bool) {
	var zero T
	if l == nil || l.head == nil {
		return zero, false
	}
	e := l.head
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	}
	e.next = nil
	l.length--
	return e.Value, true
}

// RemoveLast unlinks the tail element and returns its value. The second
// return value is false if the list was empty. Finding the new tail walks
// the chain, so this costs O(n).
func (l *List[T]) RemoveLast() (T, bool) {
	var zero T
	if l == nil || l.head == nil {
		return zero, false
	}
	if l.head == l.tail {
		return l.RemoveFirst()
	}
	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	e := l.tail
	prev.next = nil
	l.tail = prev
	l.length--
	return e.Value, true
}

// RemoveAfter unlinks the successor of e and returns its value. The second
// return value is false if e is nil, not part of this list's chain, or the
// tail.
func (l *List[T]) RemoveAfter(e *Element[T]) (T, bool) {
	var zero T
	if l == nil || e == nil || e.next == nil {
		return zero, false
	}
	victim := e.next
	e.next = victim.next
	if victim == l.tail {
		l.tail = e
	}
	victim.next = nil
	l.length--
	return victim.Value, true
}

// Each calls f for every value in list order. Iteration stops early when f
// returns false.
func (l *List[T]) Each(f func(v T) bool) {
	if l == nil {
		return
	}
	for e := l.head; e != nil; e = e.next {
		if !f(e.Value) {
			return
		}
	}
}

// Values returns an iterator over the values in list order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Clear unlinks every element, leaving an empty list. Element handles held
// by callers are detached from each other as well.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	for e := l.head; e != nil; {
		next := e.next
		e.next = nil
		e = next
	}
	l.head, l.tail, l.length = nil, nil, 0
}
