package session

// Stack is a generic LIFO stack of screen states for navigation. The stack
// never inspects its elements. Depth is unbounded; menus, sub-decks, and card
// views may nest arbitrarily. Popping an empty stack panics: callers must
// check Len before popping, and an unguarded pop is a control-flow bug that
// would otherwise corrupt navigation history.
type Stack[T any] struct {
	items []T
}

// Push adds a state on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top state. Panics when the stack is empty.
func (s *Stack[T]) Pop() T {
	if len(s.items) == 0 {
		panic("session: pop on empty navigation stack")
	}
	top := s.items[len(s.items)-1]
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top
}

// ReplaceTop swaps the top state in place, for transitions that should not
// grow history (card N to card N+1 within the same review screen). Panics
// when the stack is empty.
func (s *Stack[T]) ReplaceTop(item T) {
	if len(s.items) == 0 {
		panic("session: replace top on empty navigation stack")
	}
	s.items[len(s.items)-1] = item
}

// Peek returns the top state without removing it. The second result is false
// when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the stack depth.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
