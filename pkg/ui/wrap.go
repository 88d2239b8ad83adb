package ui

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines no wider than width, breaking only between
// words. A single word longer than width gets a line of its own.
func Wrap(text string, width int) []string {
	var lines []string
	var current []string
	length := 0

	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		// len(current) accounts for the spaces that will join the words.
		if len(current) > 0 && length+n+len(current) > width {
			lines = append(lines, strings.Join(current, " "))
			current, length = nil, 0
		}
		current = append(current, word)
		length += n
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
