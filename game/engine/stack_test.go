package engine

import (
	"errors"
	"testing"
)

func TestStack_PushPopPeek(t *testing.T) {
	s := NewStack[int](4)

	if !s.IsEmpty() {
		t.Fatal("Expected new stack to be empty")
	}

	s.Push(3)
	s.Push(2)
	s.Push(1)

	if s.Size() != 3 {
		t.Errorf("Expected size 3, got %d", s.Size())
	}

	top, err := s.Peek()
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if top != 1 {
		t.Errorf("Expected top 1, got %d", top)
	}
	if s.Size() != 3 {
		t.Errorf("Peek should not remove, size is %d", s.Size())
	}

	for _, want := range []int{1, 2, 3} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop failed: %v", err)
		}
		if got != want {
			t.Errorf("Expected %d, got %d", want, got)
		}
	}

	if !s.IsEmpty() {
		t.Error("Expected stack to be empty after popping everything")
	}
}

func TestStack_Empty(t *testing.T) {
	s := NewStack[string](0)

	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Expected ErrEmptyStack from Pop, got %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Expected ErrEmptyStack from Peek, got %v", err)
	}
}

func TestStack_ItemsIsCopy(t *testing.T) {
	s := NewStack[int](0)
	s.Push(5)
	s.Push(4)

	items := s.Items()
	if len(items) != 2 || items[0] != 5 || items[1] != 4 {
		t.Fatalf("Expected [5 4], got %v", items)
	}

	items[0] = 99
	if got := s.Items()[0]; got != 5 {
		t.Errorf("Mutating Items() changed the stack: got %d", got)
	}
}

func TestStack_Clear(t *testing.T) {
	s := NewStack[int](0)
	s.Push(1)
	s.Push(2)
	s.Clear()

	if !s.IsEmpty() {
		t.Errorf("Expected empty stack after Clear, size %d", s.Size())
	}
	s.Push(7)
	if top, _ := s.Peek(); top != 7 {
		t.Errorf("Expected top 7 after reuse, got %d", top)
	}
}
