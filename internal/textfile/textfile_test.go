package textfile

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	expect := Paths{
		Input:       "file.txt",
		Frequencies: "freqFile.txt",
		Encoded:     "encodedFile.txt",
		Decoded:     "decodedFile.txt",
	}
	actual := DefaultPaths()
	if expect != actual {
		t.Errorf("wrong paths:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestPaths_In(t *testing.T) {
	p := DefaultPaths().In("work")
	expect := filepath.Join("work", "encodedFile.txt")
	if p.Encoded != expect {
		t.Errorf("wrong path:\n\texpect: %s\n\tactual: %s", expect, p.Encoded)
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := Write(path, "first\r\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := Write(path, "héllo\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	actual, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if expect := "héllo\n"; expect != actual {
		t.Errorf("wrong content:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestWrite_BadDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), "x")
	if err == nil {
		t.Errorf("expected an error, got nil")
	}
}
