package textfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLinesDecodesWindows1252(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sidid.nfo")
	// 0xE9 is 'é' in Windows-1252.
	data := []byte("AUTHOR:   Caf\xe9 Player\r\nRELEASED: 1988\r\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	want := "AUTHOR:   Café Player"
	if lines[0] != want {
		t.Fatalf("lines[0] = %q, want %q", lines[0], want)
	}
}

func TestFirstLinesTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sidid.cfg")
	if err := os.WriteFile(path, []byte("a\r\nb\r\nc\r\nd\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := FirstLines(path, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("lines = %v", lines)
	}
}
