package deck

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads cards from tab-separated question/answer rows.
func ReadTSV(r io.Reader) ([]Card, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var cards []Card
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read TSV: %w", err)
		}
		if len(record) < 2 {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected question and answer columns", line)
		}
		card := Card{
			Question: strings.TrimSpace(record[0]),
			Answer:   strings.TrimSpace(record[1]),
		}
		if card.Question == "" || card.Answer == "" {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: empty question or answer", line)
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("TSV deck is empty")
	}
	return cards, nil
}

// WriteTSV writes cards as tab-separated question/answer rows. Newlines in
// answers are flattened to spaces since TSV rows are single-line.
func WriteTSV(w io.Writer, cards []Card) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	for _, card := range cards {
		answer := strings.ReplaceAll(card.Answer, "\n", " ")
		if err := writer.Write([]string{card.Question, answer}); err != nil {
			return fmt.Errorf("failed to write TSV: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush TSV: %w", err)
	}
	return nil
}

// WriteDeck renders cards in the native deck text format.
func WriteDeck(w io.Writer, cards []Card) error {
	for i, card := range cards {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n%s\n---\n", card.Question, card.Answer); err != nil {
			return err
		}
	}
	return nil
}
