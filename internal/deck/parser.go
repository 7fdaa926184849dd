package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads cards from the native deck text format. A line starting with
// "#" opens a card with the question on that line, the following lines form
// the answer, and "---" closes the card (optional before the next "#" or EOF).
func Parse(r io.Reader) ([]Card, error) {
	var cards []Card
	var question string
	var answer []string
	inCard := false
	lineNo := 0

	flush := func() error {
		if !inCard {
			return nil
		}
		card := Card{
			Question: strings.TrimSpace(question),
			Answer:   strings.TrimSpace(strings.Join(answer, "\n")),
		}
		if card.Question == "" {
			return fmt.Errorf("line %d: card has an empty question", lineNo)
		}
		if card.Answer == "" {
			return fmt.Errorf("line %d: card %q has an empty answer", lineNo, card.Question)
		}
		cards = append(cards, card)
		question = ""
		answer = nil
		inCard = false
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#"):
			if err := flush(); err != nil {
				return nil, err
			}
			question = strings.TrimPrefix(trimmed, "#")
			inCard = true
		case trimmed == "---":
			if !inCard {
				return nil, fmt.Errorf("line %d: separator outside a card", lineNo)
			}
			if err := flush(); err != nil {
				return nil, err
			}
		case !inCard:
			if trimmed == "" {
				continue
			}
			return nil, fmt.Errorf("line %d: content before the first card header", lineNo)
		default:
			answer = append(answer, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	lineNo++
	if err := flush(); err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("deck is empty")
	}
	return cards, nil
}

// ParseFile reads cards from the deck file at the given path.
func ParseFile(path string) ([]Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only deck file.
			_ = cerr
		}
	}()
	cards, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cards, nil
}
