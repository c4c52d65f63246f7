package huffman

import (
	"errors"
)

var (
	// ErrEmptyAlphabet is returned when a tree is requested for a text with
	// no characters in it.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrInvalidFrequency is returned by Build when a FrequencyMap holds a
	// count that is zero or negative.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrMissingCodeWord is returned by Encode when the text contains a
	// character that the CodeMap has no code word for.
	ErrMissingCodeWord = errors.New("missing code word")

	// ErrMalformedInput is returned by Decode when the encoded string
	// contains a symbol other than '0' or '1', or a run of bits that does
	// not begin any code word.
	ErrMalformedInput = errors.New("malformed encoded input")

	// ErrTruncatedInput is returned by Decode when the encoded string ends
	// in the middle of a code word.
	ErrTruncatedInput = errors.New("truncated encoded input")

	// ErrInvalidCodeMap is returned by NewDecoder when the CodeMap is not a
	// usable prefix-free binary code.
	ErrInvalidCodeMap = errors.New("invalid code map")

	// ErrRoundTrip is returned by Run when decoding does not reproduce the
	// input text.
	ErrRoundTrip = errors.New("round trip mismatch")
)
