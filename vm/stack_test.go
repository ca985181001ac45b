package vm

import "testing"

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	if s.SP() != 3 {
		t.Fatalf("SP() = %d, want 3", s.SP())
	}

	v, ok := s.Pop()
	if !ok || v != 3 {
		t.Fatalf("Pop() = (%d, %v), want (3, true)", v, ok)
	}
	if s.SP() != 2 {
		t.Fatalf("SP() after pop = %d, want 2", s.SP())
	}
}

func TestStackPopUnderflow(t *testing.T) {
	s := NewStack()
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop() on empty stack reported ok=true")
	}
}

// TestStackPopDoesNotZero verifies the load-bearing property alu.go relies
// on: a popped slot is still readable until something else overwrites it.
func TestStackPopDoesNotZero(t *testing.T) {
	s := NewStack()
	s.Push(42)
	if _, ok := s.Pop(); !ok {
		t.Fatal("Pop() reported underflow unexpectedly")
	}
	if got := s.At(0); got != 42 {
		t.Fatalf("At(0) after pop = %d, want 42 (pop must not zero the slot)", got)
	}
}

func TestStackRestore(t *testing.T) {
	s := NewStack()
	s.Push(10)
	s.Push(20)
	s.Pop()
	s.Pop()
	if s.SP() != 0 {
		t.Fatalf("SP() = %d, want 0", s.SP())
	}
	s.Restore(2)
	if s.SP() != 2 {
		t.Fatalf("SP() after Restore(2) = %d, want 2", s.SP())
	}
	if s.At(0) != 10 || s.At(1) != 20 {
		t.Fatalf("restored values = (%d, %d), want (10, 20)", s.At(0), s.At(1))
	}
}

func TestStackGrows(t *testing.T) {
	s := NewStack()
	for i := 0; i < initialStackCapacity*3; i++ {
		s.Push(Word(i))
	}
	if s.SP() != initialStackCapacity*3 {
		t.Fatalf("SP() = %d, want %d", s.SP(), initialStackCapacity*3)
	}
	if s.At(0) != 0 || s.At(initialStackCapacity*3-1) != Word(initialStackCapacity*3-1) {
		t.Fatal("growth corrupted earlier values")
	}
}
