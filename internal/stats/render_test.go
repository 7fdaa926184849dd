package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuicard/internal/model"
)

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, Report{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No review history") {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}

func TestRenderReportTables(t *testing.T) {
	reviews := []model.ReviewAggregate{
		{EndedAt: time.Unix(0, 0), DeckPath: "geo.txt", Cards: 10, Correct: 8, Incorrect: 2},
		{EndedAt: time.Unix(60, 0), DeckPath: "geo.txt", Cards: 10, Correct: 10, Incorrect: 0},
	}
	report := Report{Reviews: reviews, Decks: aggregateDecks(reviews)}
	var buf bytes.Buffer
	if err := RenderReport(&buf, report); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"geo.txt", "80.0%", "100.0%", "Passes", "Accuracy trend"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSparklineTruncatesToWidth(t *testing.T) {
	values := []float64{0, 0.25, 0.5, 0.75, 1}
	got := Sparkline(values, 3)
	if n := len([]rune(got)); n != 3 {
		t.Fatalf("sparkline width = %d, want 3", n)
	}
	// Truncation keeps the most recent values, ending with a full block.
	runes := []rune(got)
	if runes[len(runes)-1] != '█' {
		t.Fatalf("expected full block at end, got %q", got)
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	lines := formatTable(
		[]string{"Deck", "N"},
		[][]string{{"geo.txt", "5"}, {"m.txt", "10"}},
		map[int]bool{1: true},
	)
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], " 5") {
		t.Fatalf("numeric column not right-aligned: %q", lines[1])
	}
}
