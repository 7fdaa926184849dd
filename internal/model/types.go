// Package model defines shared data structures.
package model

import "time"

// ReviewConfig defines review session settings.
type ReviewConfig struct {
	DeckPath   string
	Shuffle    bool
	Amount     int
	ChunkIndex int
	ChunkCount int
	Review     bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Deck  string
	Since *time.Time
	Last  int
}

// ReviewStats captures a completed review pass.
type ReviewStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	DeckPath   string
	Cards      int
	Correct    int
	Incorrect  int
	DurationMs int64
}

// ReviewAggregate summarizes a review pass for reporting.
type ReviewAggregate struct {
	ReviewID   int64
	EndedAt    time.Time
	DeckPath   string
	Cards      int
	Correct    int
	Incorrect  int
	DurationMs int64
}

// DeckAggregate accumulates review results per deck.
type DeckAggregate struct {
	DeckPath  string
	Passes    int
	Cards     int
	Correct   int
	Incorrect int
}
