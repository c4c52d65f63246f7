package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Decoder translates encoded strings back into text for one CodeMap.
//
// The lookup table holds every code word and every proper prefix of one, so
// that a run of bits which cannot lead to any code word is rejected as soon
// as it is seen, and each step costs a single map lookup.
type Decoder struct {
	table   map[string]decoderData
	symbols int
	minSize int
	maxSize int
}

// NewDecoder builds a Decoder for the given CodeMap.  Every code word must be
// a non-empty string of '0' and '1', and no code word may be a prefix of
// another; otherwise an error wrapping ErrInvalidCodeMap is returned.
//
// An empty CodeMap is permitted.  It decodes the empty string and nothing
// else.
//
func NewDecoder(codes CodeMap) (*Decoder, error) {
	d := &Decoder{
		table:   make(map[string]decoderData, len(codes)*2),
		symbols: len(codes),
		minSize: codes.MinSize(),
		maxSize: codes.MaxSize(),
	}

	// Visit the characters in a fixed order so that error messages are
	// reproducible.
	for _, r := range codes.Symbols() {
		word := codes[r]
		if word == "" {
			return nil, fmt.Errorf("empty code word for %q: %w", r, ErrInvalidCodeMap)
		}
		if !isBinary(word) {
			return nil, fmt.Errorf("code word %q for %q is not binary: %w", word, r, ErrInvalidCodeMap)
		}
		if err := fillTable(d.table, r, word); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Decode decodes the given encoded string.
//
// Bits are accumulated until they spell a code word, at which point its
// character is emitted and accumulation starts over.  A symbol other than
// '0' or '1', or an accumulated run that begins no code word, yields an error
// wrapping ErrMalformedInput.  Leftover bits at the end of the input yield an
// error wrapping ErrTruncatedInput.
//
func (d *Decoder) Decode(encoded string) (string, error) {
	var buf strings.Builder
	start := 0
	for i := 0; i < len(encoded); i++ {
		ch := encoded[i]
		if ch != Zero && ch != One {
			return "", fmt.Errorf("offset %d: unexpected symbol %q: %w", i, ch, ErrMalformedInput)
		}

		pending := encoded[start : i+1]
		dd, found := d.table[pending]
		if !found {
			return "", fmt.Errorf("offset %d: %q does not begin any code word: %w", start, pending, ErrMalformedInput)
		}
		if dd.symbol != InvalidSymbol {
			buf.WriteRune(dd.symbol)
			start = i + 1
		}
	}

	if start < len(encoded) {
		return "", fmt.Errorf("offset %d: %q is not a complete code word: %w", start, encoded[start:], ErrTruncatedInput)
	}
	return buf.String(), nil
}

// Lookup looks up a run of bits.
//
// If word is a code word, symbol is its character and minSize == maxSize ==
// len(word).
//
// If word is a proper prefix of one or more code words, symbol ==
// InvalidSymbol and the shortest and longest of those code words are minSize
// and maxSize bits long.
//
// Otherwise, symbol == InvalidSymbol and minSize == maxSize == 0.
//
func (d *Decoder) Lookup(word string) (symbol rune, minSize int, maxSize int) {
	dd, found := d.table[word]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// NumSymbols is the number of characters in the code.
func (d *Decoder) NumSymbols() int {
	return d.symbols
}

// MinSize is the length of the shortest code word.
func (d *Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the length of the longest code word.
func (d *Decoder) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for word := range d.table {
		keys = append(keys, word)
	}
	keys.Sort()
	for _, word := range keys {
		dd := d.table[word]
		fmt.Fprintf(&buf, "\tLookup(%q) = {%d, %d, %d}\n", word, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (d *Decoder) DebugString() string {
	var buf bytes.Buffer
	_, _ = d.Dump(&buf)
	return buf.String()
}

// String returns a short human-readable description of the Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with code words of %d .. %d bits)", d.symbols, d.minSize, d.maxSize)
}

var _ fmt.Stringer = (*Decoder)(nil)

// Decode is a convenience wrapper around NewDecoder and Decoder.Decode.
func Decode(encoded string, codes CodeMap) (string, error) {
	d, err := NewDecoder(codes)
	if err != nil {
		return "", err
	}
	return d.Decode(encoded)
}

type decoderData struct {
	symbol  rune
	minSize int
	maxSize int
}

// fillTable records word as the code word for symbol, then records word's
// proper prefixes as partial entries, widening their size ranges.
func fillTable(table map[string]decoderData, symbol rune, word string) error {
	size := len(word)
	if dd, found := table[word]; found {
		if dd.symbol != InvalidSymbol {
			return fmt.Errorf("code word %q used for both %q and %q: %w", word, dd.symbol, symbol, ErrInvalidCodeMap)
		}
		return fmt.Errorf("code word %q for %q is a prefix of another code word: %w", word, symbol, ErrInvalidCodeMap)
	}
	table[word] = decoderData{symbol, size, size}

	for n := size - 1; n >= 0; n-- {
		prefix := word[:n]
		dd, found := table[prefix]
		if !found {
			table[prefix] = decoderData{InvalidSymbol, size, size}
			continue
		}
		if dd.symbol != InvalidSymbol {
			return fmt.Errorf("code word %q for %q is a prefix of %q: %w", prefix, dd.symbol, word, ErrInvalidCodeMap)
		}
		if dd.minSize > size {
			dd.minSize = size
		}
		if dd.maxSize < size {
			dd.maxSize = size
		}
		table[prefix] = dd
	}
	return nil
}

// type byCode {{{

type byCode []string

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
