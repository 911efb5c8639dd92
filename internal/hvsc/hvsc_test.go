package hvsc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRootSTILBesideStartingDir(t *testing.T) {
	root := t.TempDir()
	musicDir := filepath.Join(root, "MUSICIANS", "H", "Hubbard_Rob")
	if err := os.MkdirAll(musicDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "MUSICIANS", "STIL.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := FindRoot(filepath.Join(root, "MUSICIANS"))
	if !ok {
		t.Fatal("expected HVSC root to be found")
	}
	if got != root {
		t.Fatalf("got %q, want %q", got, root)
	}
}

func TestFindRootC64MusicLayout(t *testing.T) {
	root := t.TempDir()
	docs := filepath.Join(root, "C64Music", "DOCUMENTS")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(docs, "STIL.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := FindRoot(root)
	if !ok {
		t.Fatal("expected HVSC root to be found")
	}
	if got != filepath.Join(root, "C64Music") {
		t.Fatalf("got %q, want %q", got, filepath.Join(root, "C64Music"))
	}
}

func TestFindRootAncestorWalk(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "a", "DOCUMENTS"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "a", "DOCUMENTS", "STIL.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := FindRoot(nested)
	if !ok {
		t.Fatal("expected HVSC root to be found")
	}
	if got != filepath.Join(root, "a") {
		t.Fatalf("got %q, want %q", got, filepath.Join(root, "a"))
	}
}

func TestFindRootNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, ok := FindRoot(dir); ok {
		t.Fatal("expected no HVSC root to be found")
	}
}
