package huffman

// InvalidSymbol is returned by some functions to clearly indicate that no
// character is being returned.
const InvalidSymbol = rune(-1)

// Bit symbols used by the encoded form.
const (
	Zero = '0'
	One  = '1'
)

// singletonCode is the code word given to the only character of a
// one-character alphabet, whose leaf is also the root of the tree.
const singletonCode = "1"

// SymbolLabel returns the label used for r in the human-readable reports:
// newline and carriage return become the two-character escapes `\n` and `\r`,
// the space character becomes the word "space", and everything else is
// written literally.
func SymbolLabel(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case ' ':
		return "space"
	}
	return string(r)
}
