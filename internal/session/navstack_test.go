package session

import "testing"

func TestStackPushPopLIFO(t *testing.T) {
	var stack Stack[string]
	stack.Push("a")
	stack.Push("b")
	if got := stack.Pop(); got != "b" {
		t.Fatalf("pop = %q, want b", got)
	}
	if got := stack.Pop(); got != "a" {
		t.Fatalf("pop = %q, want a", got)
	}
	if stack.Len() != 0 {
		t.Fatalf("stack not empty after popping everything: %d", stack.Len())
	}
}

func TestStackPeekIsNonDestructive(t *testing.T) {
	var stack Stack[int]
	if _, ok := stack.Peek(); ok {
		t.Fatalf("peek on empty stack must report false")
	}
	stack.Push(7)
	top, ok := stack.Peek()
	if !ok || top != 7 {
		t.Fatalf("peek = %d/%v, want 7/true", top, ok)
	}
	if stack.Len() != 1 {
		t.Fatalf("peek must not remove the top")
	}
}

func TestStackReplaceTop(t *testing.T) {
	var stack Stack[string]
	stack.Push("menu")
	stack.Push("card 1")
	stack.ReplaceTop("card 2")
	if stack.Len() != 2 {
		t.Fatalf("replace top must not grow history: len %d", stack.Len())
	}
	if got := stack.Pop(); got != "card 2" {
		t.Fatalf("pop = %q, want card 2", got)
	}
	if got := stack.Pop(); got != "menu" {
		t.Fatalf("pop = %q, want menu", got)
	}
}

func TestStackPopEmptyPanics(t *testing.T) {
	var stack Stack[int]
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for pop on empty stack")
		}
	}()
	stack.Pop()
}

func TestStackReplaceTopEmptyPanics(t *testing.T) {
	var stack Stack[int]
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for replace top on empty stack")
		}
	}()
	stack.ReplaceTop(1)
}
