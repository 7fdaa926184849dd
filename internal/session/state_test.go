package session

import (
	"math/rand"
	"testing"
)

type fakeScreen struct {
	id   StateID
	name string
}

func (s fakeScreen) StateID() StateID {
	return s.id
}

func newTestState(review bool) *State[fakeScreen] {
	params, err := NewParams(false, 0, WholeDeck, review)
	if err != nil {
		panic(err)
	}
	return NewState[fakeScreen](rand.New(rand.NewSource(1)), params)
}

func TestStateGoToAndBackRestoresSnapshot(t *testing.T) {
	st := newTestState(false)
	menu := fakeScreen{id: "menu", name: "menu"}
	card := fakeScreen{id: "card", name: "card"}

	st.GoTo(menu, nil)
	st.GoTo(card, 3) // remember menu cursor at row 3

	top, snap := st.GoBack()
	if top.name != "menu" {
		t.Fatalf("top after back = %q, want menu", top.name)
	}
	cursor, ok := snap.(int)
	if !ok || cursor != 3 {
		t.Fatalf("snapshot = %v, want 3", snap)
	}
}

func TestStateSnapshotUnchangedWithoutUpdate(t *testing.T) {
	st := newTestState(false)
	st.GoTo(fakeScreen{id: "menu"}, nil)
	st.GoTo(fakeScreen{id: "card"}, "row 5")
	st.GoTo(fakeScreen{id: "help"}, nil)

	if _, snap := st.GoBack(); snap != nil {
		t.Fatalf("card screen had no saved snapshot, got %v", snap)
	}
	if _, snap := st.GoBack(); snap != "row 5" {
		t.Fatalf("menu snapshot = %v, want row 5", snap)
	}
}

func TestStateCanGoBackGuardsRoot(t *testing.T) {
	st := newTestState(false)
	if st.CanGoBack() {
		t.Fatalf("empty session must not allow back")
	}
	st.GoTo(fakeScreen{id: "menu"}, nil)
	if st.CanGoBack() {
		t.Fatalf("root screen alone must not allow back")
	}
	st.GoTo(fakeScreen{id: "card"}, nil)
	if !st.CanGoBack() {
		t.Fatalf("nested screen must allow back")
	}
}

func TestStateReplaceTopKeepsDepth(t *testing.T) {
	st := newTestState(false)
	st.GoTo(fakeScreen{id: "menu"}, nil)
	st.GoTo(fakeScreen{id: "card", name: "card 1"}, nil)
	st.ReplaceTop(fakeScreen{id: "card", name: "card 2"})
	if st.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", st.Depth())
	}
	top, ok := st.Top()
	if !ok || top.name != "card 2" {
		t.Fatalf("top = %q, want card 2", top.name)
	}
}

func TestStateStartPassOnlyInReviewMode(t *testing.T) {
	plain := newTestState(false)
	plain.StartPass(5)
	if plain.Tracker != nil {
		t.Fatalf("tracker must stay nil outside review mode")
	}
	review := newTestState(true)
	review.StartPass(5)
	if review.Tracker == nil || review.Tracker.Len() != 5 {
		t.Fatalf("review mode must attach a 5-card tracker")
	}
}

func TestStateSaveSnapshotOutsideTransition(t *testing.T) {
	st := newTestState(false)
	st.GoTo(fakeScreen{id: "menu"}, nil)
	st.SaveSnapshot("menu", 9)
	snap, ok := st.Snapshot("menu")
	if !ok || snap != 9 {
		t.Fatalf("snapshot = %v/%v, want 9/true", snap, ok)
	}
}
