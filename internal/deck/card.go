// Package deck loads flashcard decks from text sources.
package deck

// Card is a single question/answer flashcard.
type Card struct {
	Question string
	Answer   string
}
