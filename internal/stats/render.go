package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const terminalWidthBackup = 80

// Eight sub-cell levels from empty to full block.
var sparkLevels = []rune(" ▁▂▃▄▅▆▇█")

// RenderReport writes the review history report: recent passes, per-deck
// totals, and an accuracy trend sized to the terminal.
func RenderReport(w io.Writer, report Report) error {
	if len(report.Reviews) == 0 {
		_, err := fmt.Fprintln(w, "No review history yet.")
		return err
	}

	rows := make([][]string, 0, len(report.Reviews))
	for _, r := range report.Reviews {
		rows = append(rows, []string{
			r.EndedAt.Format("2006-01-02 15:04"),
			r.DeckPath,
			fmt.Sprintf("%d", r.Cards),
			fmt.Sprintf("%d/%d", r.Correct, r.Correct+r.Incorrect),
			fmt.Sprintf("%.1f%%", Accuracy(r.Correct, r.Incorrect)*100),
		})
	}
	headers := []string{"Finished", "Deck", "Cards", "Correct", "Accuracy"}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	deckRows := make([][]string, 0, len(report.Decks))
	for _, d := range report.Decks {
		deckRows = append(deckRows, []string{
			d.DeckPath,
			fmt.Sprintf("%d", d.Passes),
			fmt.Sprintf("%.1f%%", Accuracy(d.Correct, d.Incorrect)*100),
		})
	}
	for _, line := range formatTable([]string{"Deck", "Passes", "Accuracy"}, deckRows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	curve := AccuracyCurve(report.Reviews)
	if len(curve) > 1 {
		if _, err := fmt.Fprintf(w, "\nAccuracy trend: %s\n", Sparkline(curve, terminalWidth()-len("Accuracy trend: "))); err != nil {
			return err
		}
	}
	return nil
}

// Sparkline renders values in [0, 1] as a block-character strip no wider
// than width, keeping the most recent values when truncating.
func Sparkline(values []float64, width int) string {
	if width < 1 {
		width = 1
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		idx := int(v * float64(len(sparkLevels)-1))
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
