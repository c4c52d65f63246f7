package huffman

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Result holds every intermediate product of one Run.
type Result struct {
	Text        string
	Frequencies FrequencyMap
	Tree        *Tree
	Codes       CodeMap
	Encoded     string
	Decoded     string

	// TextSum and DecodedSum are the XXH64 digests of Text and Decoded.
	TextSum    uint64
	DecodedSum uint64
}

// Run counts, builds, assigns, encodes and decodes text, in that order, and
// checks that the decoded text matches the input.
//
// The empty text yields ErrEmptyAlphabet.  A mismatch after decoding yields
// ErrRoundTrip; the Result is returned alongside it for inspection.
//
func Run(text string) (*Result, error) {
	freq := Count(text)

	tree, err := Build(freq)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}

	codes := Assign(tree)

	encoded, err := Encode(text, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode: %w", err)
	}

	decoded, err := Decode(encoded, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}

	result := &Result{
		Text:        text,
		Frequencies: freq,
		Tree:        tree,
		Codes:       codes,
		Encoded:     encoded,
		Decoded:     decoded,
		TextSum:     xxhash.Sum64String(text),
		DecodedSum:  xxhash.Sum64String(decoded),
	}
	if err := result.Verify(); err != nil {
		return result, err
	}
	return result, nil
}

// Verify compares the digests and the texts of the input and the decoded
// output.
func (result *Result) Verify() error {
	if result.TextSum != result.DecodedSum || result.Text != result.Decoded {
		return fmt.Errorf("input digest %016x, decoded digest %016x: %w", result.TextSum, result.DecodedSum, ErrRoundTrip)
	}
	return nil
}

// EncodedBits is the number of bits in the encoded form, i.e. the number of
// '0' and '1' characters.
func (result *Result) EncodedBits() int {
	return len(result.Encoded)
}

// Ratio is EncodedBits divided by the size of the input text in bits at 8
// bits per byte.  It is 0 for an empty text.
func (result *Result) Ratio() float64 {
	if len(result.Text) == 0 {
		return 0
	}
	return float64(result.EncodedBits()) / float64(8*len(result.Text))
}
