package tui

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/verte-zerg/tuicard/internal/session"
)

// Screen kinds on the navigation stack. Snapshot data is remembered per kind.
const (
	menuID    session.StateID = "menu"
	cardID    session.StateID = "card"
	summaryID session.StateID = "summary"
)

// screen is the union of UI states the navigation stack holds.
type screen interface {
	session.Screen
}

// menuScreen is the root screen. It is pushed first and popped only on exit.
type menuScreen struct {
	cursor int
}

func (menuScreen) StateID() session.StateID { return menuID }

// menuSnapshot remembers the menu cursor across navigation.
type menuSnapshot struct {
	cursor int
}

func menuSnapshotFrom(v any) (menuSnapshot, bool) {
	snap, ok := v.(menuSnapshot)
	return snap, ok
}

// cardScreen walks one pass over the session sequence. pass holds the
// positions (into the session sequence) this pass visits; cursor indexes
// into pass. Moving between cards replaces the top of the stack instead of
// growing history.
type cardScreen struct {
	pass     []int
	cursor   int
	revealed bool
	retry    bool
	body     viewport.Model
}

func (cardScreen) StateID() session.StateID { return cardID }

// cardSnapshot remembers where a pass stopped so the menu can resume it.
type cardSnapshot struct {
	pass     []int
	cursor   int
	retry    bool
	started  bool
	revealed bool
}

func cardSnapshotFrom(v any) (cardSnapshot, bool) {
	snap, ok := v.(cardSnapshot)
	return snap, ok
}

func (s cardScreen) snapshot() cardSnapshot {
	return cardSnapshot{
		pass:     s.pass,
		cursor:   s.cursor,
		retry:    s.retry,
		started:  true,
		revealed: s.revealed,
	}
}

// summaryScreen shows pass results and offers a retry sub-pass in review mode.
type summaryScreen struct {
	viewed    int
	correct   int
	incorrect int
	unseen    int
	remaining []int
	retry     bool
}

func (summaryScreen) StateID() session.StateID { return summaryID }
