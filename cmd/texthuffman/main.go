// texthuffman - Huffman-code a text file
//
// Usage:
//
//	texthuffman
//
// Reads file.txt from the working directory and writes:
//
//	freqFile.txt     one "<char>:<count>" line per character
//	encodedFile.txt  the text encoded as '0' and '1' characters
//	decodedFile.txt  the encoded text decoded again
//
// Each report is also printed to stdout, along with the code table.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	huffman "github.com/chronos-tachyon/texthuffman"
	"github.com/chronos-tachyon/texthuffman/internal/textfile"
)

// errWrite reports that at least one output file could not be written.
var errWrite = errors.New("one or more output files were not written")

func main() {
	logger := log.New(os.Stderr, "texthuffman: ", 0)
	if err := run(textfile.DefaultPaths(), os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

// run executes one pass.  A failure to read the input aborts before anything
// is encoded.  A failure to write an output is logged and the pass goes on;
// errWrite is returned at the end.
func run(paths textfile.Paths, stdout io.Writer, logger *log.Logger) error {
	text, err := textfile.Read(paths.Input)
	if err != nil {
		return err
	}

	result, err := huffman.Run(text)
	if err != nil {
		return err
	}

	failed := false
	write := func(path string, content string) {
		if err := textfile.Write(path, content); err != nil {
			logger.Print(err)
			failed = true
		}
	}

	freqReport := result.Frequencies.String()
	fmt.Fprintln(stdout, "Characters and Frequencies ===>")
	fmt.Fprintf(stdout, "(freqFile in path : %s)\n", paths.Frequencies)
	fmt.Fprintln(stdout, freqReport)
	write(paths.Frequencies, freqReport)

	fmt.Fprintln(stdout, "Characters and Huffman codes ===>")
	fmt.Fprintln(stdout, result.Codes.String())

	fmt.Fprintln(stdout, "Encoded Text ===>")
	fmt.Fprintf(stdout, "(encodedFile in path : %s)\n", paths.Encoded)
	fmt.Fprintln(stdout, result.Encoded)
	write(paths.Encoded, result.Encoded)

	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Decoded Text ===>")
	fmt.Fprintf(stdout, "(decodedFile in path : %s)\n", paths.Decoded)
	fmt.Fprintln(stdout, result.Decoded)
	write(paths.Decoded, result.Decoded)

	logger.Printf("%d characters, %d distinct, %d encoded bits (%.3f of 8-bit size), xxh64 %016x",
		result.Frequencies.Total(), len(result.Frequencies), result.EncodedBits(), result.Ratio(), result.DecodedSum)

	if failed {
		return errWrite
	}
	return nil
}
