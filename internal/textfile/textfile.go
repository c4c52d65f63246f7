// Package textfile reads and writes the whole-file text inputs and outputs
// of the texthuffman command.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths names the files used by one run.
type Paths struct {
	Input       string
	Frequencies string
	Encoded     string
	Decoded     string
}

// DefaultPaths returns the fixed file names, relative to the working
// directory.
func DefaultPaths() Paths {
	return Paths{
		Input:       "file.txt",
		Frequencies: "freqFile.txt",
		Encoded:     "encodedFile.txt",
		Decoded:     "decodedFile.txt",
	}
}

// In returns a copy of p with every path joined onto dir.
func (p Paths) In(dir string) Paths {
	return Paths{
		Input:       filepath.Join(dir, p.Input),
		Frequencies: filepath.Join(dir, p.Frequencies),
		Encoded:     filepath.Join(dir, p.Encoded),
		Decoded:     filepath.Join(dir, p.Decoded),
	}
}

// Read returns the entire content of the file at path.
func Read(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(raw), nil
}

// Write replaces the file at path with content.
func Write(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
