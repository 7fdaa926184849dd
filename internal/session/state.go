package session

import "math/rand"

// StateID identifies a screen kind for persisted snapshot data.
type StateID string

// Screen is the capability every navigable screen state provides: a stable
// identifier under which its snapshot data is remembered.
type Screen interface {
	StateID() StateID
}

// State is the root aggregate threaded through an interactive session. It
// exclusively owns the random source, the navigation stack, the per-screen
// snapshot store, the immutable session parameters, and (in review mode) the
// outcome tracker. The session is single-threaded: only one interface event
// is in flight at a time, so no locking is needed.
type State[S Screen] struct {
	Rand    *rand.Rand
	Params  Params
	Tracker *Tracker

	stack     Stack[S]
	snapshots map[StateID]any
}

// NewState builds a session around a seeded random source and validated
// parameters. The tracker is attached only when review mode is on; it is
// sized later by StartPass once the card sequence is known.
func NewState[S Screen](rnd *rand.Rand, params Params) *State[S] {
	return &State[S]{
		Rand:      rnd,
		Params:    params,
		snapshots: map[StateID]any{},
	}
}

// StartPass resets outcome tracking for a pass over n cards. It is a no-op
// unless review mode is enabled.
func (st *State[S]) StartPass(n int) {
	if st.Params.Review {
		st.Tracker = NewTracker(n)
	}
}

// GoTo pushes the next screen. The outgoing top screen's snapshot, when not
// nil, is remembered under its StateID so a later GoBack can restore scroll
// position, cursor index, and the like.
func (st *State[S]) GoTo(next S, snapshot any) {
	if top, ok := st.stack.Peek(); ok && snapshot != nil {
		st.snapshots[top.StateID()] = snapshot
	}
	st.stack.Push(next)
}

// GoBack pops the current screen and returns the newly exposed top together
// with its previously saved snapshot (nil when none was saved). Panics when
// the stack is empty; callers guard with CanGoBack.
func (st *State[S]) GoBack() (S, any) {
	st.stack.Pop()
	top, ok := st.stack.Peek()
	if !ok {
		var zero S
		return zero, nil
	}
	return top, st.snapshots[top.StateID()]
}

// ReplaceTop swaps the current screen without growing history.
func (st *State[S]) ReplaceTop(next S) {
	st.stack.ReplaceTop(next)
}

// Top returns the current screen, or false when nothing has been pushed yet.
func (st *State[S]) Top() (S, bool) {
	return st.stack.Peek()
}

// CanGoBack reports whether a screen besides the root is on the stack. The
// root screen is popped only on session exit, never by ordinary back traffic.
func (st *State[S]) CanGoBack() bool {
	return st.stack.Len() > 1
}

// Depth returns the navigation stack depth.
func (st *State[S]) Depth() int {
	return st.stack.Len()
}

// Snapshot returns the saved snapshot for a screen kind, if any.
func (st *State[S]) Snapshot(id StateID) (any, bool) {
	snap, ok := st.snapshots[id]
	return snap, ok
}

// SaveSnapshot stores snapshot data for a screen kind outside a GoTo
// transition, e.g. right before the session ends.
func (st *State[S]) SaveSnapshot(id StateID, snapshot any) {
	st.snapshots[id] = snapshot
}
