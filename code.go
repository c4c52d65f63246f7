package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// CodeMap maps each character to its code word, a non-empty string of '0'
// and '1' characters.
type CodeMap map[rune]string

// Symbols returns the characters of the map in ascending order.
func (codes CodeMap) Symbols() []rune {
	list := make([]rune, 0, len(codes))
	for r := range codes {
		list = append(list, r)
	}
	sortRunes(list)
	return list
}

// MinSize is the length of the shortest code word, or 0 if the map is empty.
func (codes CodeMap) MinSize() int {
	var minSize int
	for _, word := range codes {
		if minSize == 0 || minSize > len(word) {
			minSize = len(word)
		}
	}
	return minSize
}

// MaxSize is the length of the longest code word, or 0 if the map is empty.
func (codes CodeMap) MaxSize() int {
	var maxSize int
	for _, word := range codes {
		if maxSize < len(word) {
			maxSize = len(word)
		}
	}
	return maxSize
}

// IsPrefixFree returns true iff no code word is a prefix of another.  Two
// equal code words count as a violation.
func (codes CodeMap) IsPrefixFree() bool {
	words := make([]string, 0, len(codes))
	for _, word := range codes {
		words = append(words, word)
	}
	sort.Strings(words)

	// After sorting, every word that extends w sits directly after w or
	// after another word that also extends w.
	for i := 1; i < len(words); i++ {
		prev, next := words[i-1], words[i]
		if len(prev) <= len(next) && next[:len(prev)] == prev {
			return false
		}
	}
	return true
}

// WeightedLength returns the sum over all characters of frequency times code
// word length, i.e. the length of the encoded text.  Characters of freq that
// have no code word contribute nothing.
func (codes CodeMap) WeightedLength(freq FrequencyMap) int {
	var total int
	for r, n := range freq {
		total = saturatingAdd(total, n*len(codes[r]))
	}
	return total
}

// Dump writes the code-map report to the given writer, one
// "<label>:<code word>" line per character.  See SymbolLabel.
func (codes CodeMap) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, r := range codes.Symbols() {
		fmt.Fprintf(&buf, "%s:%s\n", SymbolLabel(r), codes[r])
	}
	return buf.WriteTo(w)
}

// String returns the code-map report as a string.
func (codes CodeMap) String() string {
	var buf bytes.Buffer
	_, _ = codes.Dump(&buf)
	return buf.String()
}

var _ fmt.Stringer = CodeMap(nil)
