package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	codes := makeTestCodes()

	type testRow struct {
		text   string
		expect string
	}

	testData := [...]testRow{
		{text: "", expect: ""},
		{text: "f", expect: "0"},
		{text: "fade", expect: "0" + "1100" + "101" + "111"},
		{text: "cab", expect: "100" + "1100" + "1101"},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			actual, err := Encode(row.text, codes)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestEncode_SingleSymbol(t *testing.T) {
	actual, err := Encode("aaaa", CodeMap{'a': "1"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expect := "1111"; expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestEncode_MissingCodeWord(t *testing.T) {
	actual, err := Encode("bad!", makeTestCodes())
	if !errors.Is(err, ErrMissingCodeWord) {
		t.Fatalf("expected ErrMissingCodeWord, got %v", err)
	}
	if !strings.Contains(err.Error(), "'!' at byte offset 3") {
		t.Errorf("error does not locate the character: %v", err)
	}
	if actual != "" {
		t.Errorf("expected no output, got %q", actual)
	}
}
