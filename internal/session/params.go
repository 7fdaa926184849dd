// Package session contains the review session engine: parameter validation,
// deck transformation, outcome tracking, and screen navigation.
package session

import "fmt"

// Chunk selects the Index-th of Count contiguous partitions of a deck.
// Construct through NewChunk; the zero value is not valid.
type Chunk struct {
	Index int
	Count int
}

// WholeDeck is the chunk covering the entire deck.
var WholeDeck = Chunk{Index: 1, Count: 1}

// NewChunk validates and builds a chunk descriptor.
func NewChunk(index, count int) (Chunk, error) {
	if count < 1 {
		return Chunk{}, fmt.Errorf("chunk count must be at least 1, got %d", count)
	}
	if index < 1 || index > count {
		return Chunk{}, fmt.Errorf("chunk index must be between 1 and %d, got %d", count, index)
	}
	return Chunk{Index: index, Count: count}, nil
}

// Params holds the immutable settings for one review session.
// Subset of 0 means no subset bound.
type Params struct {
	Shuffle bool
	Subset  int
	Chunk   Chunk
	Review  bool
}

// NewParams validates and builds session parameters.
func NewParams(shuffle bool, subset int, chunk Chunk, review bool) (Params, error) {
	if subset < 0 {
		return Params{}, fmt.Errorf("subset must be positive, got %d", subset)
	}
	if _, err := NewChunk(chunk.Index, chunk.Count); err != nil {
		return Params{}, err
	}
	return Params{Shuffle: shuffle, Subset: subset, Chunk: chunk, Review: review}, nil
}
