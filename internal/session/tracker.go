package session

import "fmt"

// Outcome is the recorded result for one card position.
type Outcome int

// Per-card outcomes. Every position starts Unseen.
const (
	Unseen Outcome = iota
	Correct
	Incorrect
)

// Tracker records per-card correctness across one review pass. Positions
// index into the session's card sequence. Recording an out-of-range position
// panics: positions are interface-supplied and a bad one is a bookkeeping
// bug, not a user-triggerable condition.
type Tracker struct {
	outcomes []Outcome
}

// NewTracker builds a tracker with n cards, all Unseen.
func NewTracker(n int) *Tracker {
	return &Tracker{outcomes: make([]Outcome, n)}
}

// Len returns the number of tracked positions.
func (t *Tracker) Len() int {
	return len(t.outcomes)
}

// Record stores the verdict for the card at pos, overwriting any earlier one.
func (t *Tracker) Record(pos int, correct bool) {
	if pos < 0 || pos >= len(t.outcomes) {
		panic(fmt.Sprintf("session: record position %d out of range [0, %d)", pos, len(t.outcomes)))
	}
	if correct {
		t.outcomes[pos] = Correct
	} else {
		t.outcomes[pos] = Incorrect
	}
}

// Outcome returns the recorded outcome for pos.
func (t *Tracker) Outcome(pos int) Outcome {
	if pos < 0 || pos >= len(t.outcomes) {
		panic(fmt.Sprintf("session: outcome position %d out of range [0, %d)", pos, len(t.outcomes)))
	}
	return t.outcomes[pos]
}

// Remaining lists positions not yet Correct, in original order. A retry
// sub-pass is built from exactly these positions.
func (t *Tracker) Remaining() []int {
	var positions []int
	for pos, outcome := range t.outcomes {
		if outcome != Correct {
			positions = append(positions, pos)
		}
	}
	return positions
}

// IsComplete reports whether every position is Correct.
func (t *Tracker) IsComplete() bool {
	for _, outcome := range t.outcomes {
		if outcome != Correct {
			return false
		}
	}
	return true
}

// Summary returns the outcome counts for the pass.
func (t *Tracker) Summary() (correct, incorrect, unseen int) {
	for _, outcome := range t.outcomes {
		switch outcome {
		case Correct:
			correct++
		case Incorrect:
			incorrect++
		default:
			unseen++
		}
	}
	return correct, incorrect, unseen
}
