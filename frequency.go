package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyMap maps each character of a text to its number of occurrences.
// Every count is positive.
type FrequencyMap map[rune]int

// Count returns the FrequencyMap for text.  The empty text yields an empty
// map.
func Count(text string) FrequencyMap {
	freq := make(FrequencyMap)
	for _, r := range text {
		freq[r]++
	}
	return freq
}

// Total returns the sum of all counts, which equals the number of characters
// in the counted text.
func (freq FrequencyMap) Total() int {
	var total int
	for _, n := range freq {
		total = saturatingAdd(total, n)
	}
	return total
}

// Symbols returns the characters of the map in ascending order.
func (freq FrequencyMap) Symbols() []rune {
	list := make([]rune, 0, len(freq))
	for r := range freq {
		list = append(list, r)
	}
	sortRunes(list)
	return list
}

// Dump writes the frequency report to the given writer, one
// "<label>:<count>" line per character.  See SymbolLabel.
func (freq FrequencyMap) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, r := range freq.Symbols() {
		fmt.Fprintf(&buf, "%s:%d\n", SymbolLabel(r), freq[r])
	}
	return buf.WriteTo(w)
}

// String returns the frequency report as a string.
func (freq FrequencyMap) String() string {
	var buf bytes.Buffer
	_, _ = freq.Dump(&buf)
	return buf.String()
}

var _ fmt.Stringer = FrequencyMap(nil)
