package huffman

import (
	"fmt"
	"strings"
)

// Encode replaces every character of text with its code word and returns the
// concatenation, in input order.
//
// A character with no entry in codes yields an error wrapping
// ErrMissingCodeWord; nothing is skipped.
//
func Encode(text string, codes CodeMap) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))
	for offset, r := range text {
		word, found := codes[r]
		if !found {
			return "", fmt.Errorf("character %q at byte offset %d: %w", r, offset, ErrMissingCodeWord)
		}
		buf.WriteString(word)
	}
	return buf.String(), nil
}
