package engine

import "errors"

// ErrEmptyStack is returned when popping or peeking an empty stack.
var ErrEmptyStack = errors.New("empty stack")

// Stack is a LIFO container. It imposes no ordering on its values; the
// engine only ever pushes a disk smaller than the current top.
type Stack[T any] struct {
	items []T
}

// NewStack creates a stack with an optional capacity hint.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		return &Stack[T]{}
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Push adds one value to the top.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmptyStack
	}
	last := len(s.items) - 1
	value := s.items[last]
	s.items = s.items[:last]
	return value, nil
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

// Size returns the number of values on the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Items returns a copy of the values in push order (bottom first).
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Clear empties the stack, keeping its capacity.
func (s *Stack[T]) Clear() {
	s.items = s.items[:0]
}
