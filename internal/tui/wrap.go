// Package tui provides the Bubble Tea review interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText word-wraps text to the given display width, preserving explicit
// newlines. Words wider than the width are split hard.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var current strings.Builder
	currentWidth := 0
	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+wordWidth > width {
			flush()
		}
		if wordWidth > width {
			chunks := splitWord(word, width)
			for _, chunk := range chunks[:len(chunks)-1] {
				lines = append(lines, chunk)
			}
			last := chunks[len(chunks)-1]
			current.WriteString(last)
			currentWidth = runewidth.StringWidth(last)
			continue
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}
	if currentWidth > 0 {
		flush()
	}
	return lines
}

// splitWord cuts an overlong word into display-width chunks.
func splitWord(word string, width int) []string {
	var chunks []string
	var current strings.Builder
	currentWidth := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width {
			chunks = append(chunks, current.String())
			current.Reset()
			currentWidth = 0
		}
		current.WriteRune(r)
		currentWidth += rw
	}
	if currentWidth > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
