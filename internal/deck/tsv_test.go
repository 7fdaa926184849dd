package deck

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadTSV(t *testing.T) {
	input := "What is 2+2?\t4\nCapital of Japan\tTokyo\n"
	cards, err := ReadTSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read tsv: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[1].Question != "Capital of Japan" || cards[1].Answer != "Tokyo" {
		t.Fatalf("unexpected card: %+v", cards[1])
	}
}

func TestReadTSVErrors(t *testing.T) {
	cases := map[string]string{
		"missing answer column": "lonely question\n",
		"empty answer":          "question\t\n",
		"empty input":           "",
	}
	for name, input := range cases {
		if _, err := ReadTSV(strings.NewReader(input)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestWriteTSVFlattensNewlines(t *testing.T) {
	cards := []Card{{Question: "colors", Answer: "red\nblue"}}
	var buf bytes.Buffer
	if err := WriteTSV(&buf, cards); err != nil {
		t.Fatalf("write tsv: %v", err)
	}
	if got := buf.String(); got != "colors\tred blue\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestWriteDeckRoundTrip(t *testing.T) {
	cards := []Card{
		{Question: "first", Answer: "one"},
		{Question: "second", Answer: "line a\nline b"},
	}
	var buf bytes.Buffer
	if err := WriteDeck(&buf, cards); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse rendered deck: %v", err)
	}
	if len(parsed) != len(cards) {
		t.Fatalf("round trip lost cards: %d vs %d", len(parsed), len(cards))
	}
	for i := range cards {
		if parsed[i] != cards[i] {
			t.Fatalf("card %d changed: %+v vs %+v", i, parsed[i], cards[i])
		}
	}
}
