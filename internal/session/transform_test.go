package session

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/verte-zerg/tuicard/internal/deck"
)

func testDeck(n int) []deck.Card {
	cards := make([]deck.Card, n)
	for i := range cards {
		cards[i] = deck.Card{
			Question: fmt.Sprintf("q%d", i),
			Answer:   fmt.Sprintf("a%d", i),
		}
	}
	return cards
}

func TestTransformNoShuffleKeepsOrder(t *testing.T) {
	cards := testDeck(10)
	params, err := NewParams(false, 0, Chunk{Index: 2, Count: 3}, false)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	rnd := rand.New(rand.NewSource(1))
	got, err := Transform(cards, params, rnd)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 cards for chunk 2/3 of 10, got %d", len(got))
	}
	for i, card := range got {
		want := fmt.Sprintf("q%d", 4+i)
		if card.Question != want {
			t.Fatalf("card %d: got %s, want %s", i, card.Question, want)
		}
	}
}

func TestTransformSubsetTakesFirstCards(t *testing.T) {
	cards := testDeck(10)
	params, err := NewParams(false, 3, WholeDeck, false)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	rnd := rand.New(rand.NewSource(1))
	got, err := Transform(cards, params, rnd)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(got))
	}
	for i, card := range got {
		if want := fmt.Sprintf("q%d", i); card.Question != want {
			t.Fatalf("card %d: got %s, want %s", i, card.Question, want)
		}
	}
}

func TestTransformSubsetLargerThanChunkKeepsAll(t *testing.T) {
	cards := testDeck(4)
	params, err := NewParams(false, 100, WholeDeck, false)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	got, err := Transform(cards, params, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected all 4 cards, got %d", len(got))
	}
}

func TestTransformChunkBeforeSubset(t *testing.T) {
	// Subset narrows the chunk, it never redefines chunk boundaries.
	cards := testDeck(10)
	params, err := NewParams(false, 2, Chunk{Index: 2, Count: 2}, false)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	got, err := Transform(cards, params, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(got))
	}
	if got[0].Question != "q5" || got[1].Question != "q6" {
		t.Fatalf("expected q5 q6, got %s %s", got[0].Question, got[1].Question)
	}
}

func TestTransformEmptyChunkIsValid(t *testing.T) {
	cards := testDeck(2)
	params, err := NewParams(false, 0, Chunk{Index: 4, Count: 4}, false)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	got, err := Transform(cards, params, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sequence, got %d cards", len(got))
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	cards := testDeck(8)
	params, err := NewParams(true, 0, WholeDeck, false)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	if _, err := Transform(cards, params, rand.New(rand.NewSource(42))); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	for i, card := range cards {
		if want := fmt.Sprintf("q%d", i); card.Question != want {
			t.Fatalf("input deck mutated at %d: got %s, want %s", i, card.Question, want)
		}
	}
}

func TestTransformShuffleIsUniform(t *testing.T) {
	const draws = 10000
	cards := testDeck(4)
	params, err := NewParams(true, 0, WholeDeck, false)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	rnd := rand.New(rand.NewSource(7))
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		got, err := Transform(cards, params, rnd)
		if err != nil {
			t.Fatalf("Transform: %v", err)
		}
		questions := make([]string, len(got))
		for j, card := range got {
			questions[j] = card.Question
		}
		counts[strings.Join(questions, ",")]++
	}
	if len(counts) != 24 {
		t.Fatalf("expected all 24 permutations of 4 cards, got %d", len(counts))
	}
	// Expected count per permutation is draws/24 ~ 416; allow a wide band.
	for perm, count := range counts {
		if count < 300 || count > 540 {
			t.Fatalf("permutation %s drawn %d times, outside [300, 540]", perm, count)
		}
	}
}

func TestTransformShuffleDeterministicForSeed(t *testing.T) {
	cards := testDeck(6)
	params, err := NewParams(true, 0, WholeDeck, false)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	first, err := Transform(cards, params, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	second, err := Transform(cards, params, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different orders at %d: %s vs %s", i, first[i].Question, second[i].Question)
		}
	}
}

func TestNewParamsRejectsNegativeSubset(t *testing.T) {
	if _, err := NewParams(false, -1, WholeDeck, false); err == nil {
		t.Fatalf("expected error for negative subset")
	}
}

func TestNewParamsRejectsInvalidChunk(t *testing.T) {
	if _, err := NewParams(false, 0, Chunk{Index: 5, Count: 2}, false); err == nil {
		t.Fatalf("expected error for invalid chunk")
	}
}
