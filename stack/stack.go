// Package stack provides Stack[T], a LIFO container whose Pop never panics:
// popping an empty stack returns option.None instead.
package stack

import (
	"fmt"
	"slices"

	"github.com/marcodamonte/oop-concepts/option"
)

// Stack is backed by a slice; the tail of the slice is the top of the stack.
// The zero value is an empty stack ready to use.
//
// There is no capacity limit: Push always succeeds.
type Stack[T any] struct {
	items []T
}

// New returns a stack holding a copy of initial, first element at the bottom.
// The caller's slice is never aliased, so later writes to it do not leak in.
func New[T any](initial ...T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(initial)}
}

func (s *Stack[T]) Len() int      { return len(s.items) }
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes the top element and returns it as Present. On an empty stack it
// returns Absent and leaves the stack untouched, however many times it runs.
func (s *Stack[T]) Pop() option.Option[T] {
	if len(s.items) == 0 {
		return option.None[T]()
	}
	last := len(s.items) - 1
	top := s.items[last]

	var zero T
	s.items[last] = zero // drop the reference so the GC can reclaim it
	s.items = s.items[:last]
	return option.Some(top)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() option.Option[T] {
	if len(s.items) == 0 {
		return option.None[T]()
	}
	return option.Some(s.items[len(s.items)-1])
}

// Concat returns a new stack with s's elements followed by other's, so the
// top of other ends up on top. Neither operand is modified; a nil other is
// treated as empty.
func (s *Stack[T]) Concat(other *Stack[T]) *Stack[T] {
	var tail []T
	if other != nil {
		tail = other.items
	}
	items := make([]T, 0, len(s.items)+len(tail))
	items = append(items, s.items...)
	items = append(items, tail...)
	return &Stack[T]{items: items}
}

// Values returns a copy of the elements, bottom first.
func (s *Stack[T]) Values() []T { return slices.Clone(s.items) }

// String renders the full backing sequence, e.g. "Stack([Hello World!])".
func (s *Stack[T]) String() string {
	return fmt.Sprintf("Stack(%v)", s.items)
}
