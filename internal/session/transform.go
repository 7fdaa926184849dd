package session

import (
	"math/rand"

	"github.com/verte-zerg/tuicard/internal/deck"
)

// Transform derives the exact card sequence for a session: shuffle the full
// deck (when enabled), slice out the requested chunk, then truncate to the
// subset bound. Chunking happens after shuffling so a chunk is always the
// i-th of n parts of the same random draw, and the subset narrows the chunk
// rather than redefining it. The input slice is never mutated. An empty
// result is valid.
func Transform(cards []deck.Card, p Params, rnd *rand.Rand) ([]deck.Card, error) {
	seq := make([]deck.Card, len(cards))
	copy(seq, cards)
	if p.Shuffle {
		rnd.Shuffle(len(seq), func(i, j int) {
			seq[i], seq[j] = seq[j], seq[i]
		})
	}
	lo, hi, err := ChunkRange(len(seq), p.Chunk)
	if err != nil {
		return nil, err
	}
	seq = seq[lo:hi]
	if p.Subset > 0 && p.Subset < len(seq) {
		seq = seq[:p.Subset]
	}
	return seq, nil
}
