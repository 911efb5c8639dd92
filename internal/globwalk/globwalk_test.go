package globwalk

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"a.sid", "B.SID", "readme.txt"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.sid"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestWalkNonRecursiveCaseInsensitive(t *testing.T) {
	root := setupTree(t)
	got, err := Walk(root, "*.sid", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 matches", got)
	}
}

func TestWalkRecursiveDescendsSubdirectories(t *testing.T) {
	root := setupTree(t)
	got, err := Walk(root, "*.sid", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %v, want 3 matches", got)
	}
}

func TestWalkSortsByFilename(t *testing.T) {
	root := setupTree(t)
	got, err := Walk(root, "*.sid", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(got[0]) > filepath.Base(got[1]) {
		t.Fatalf("got = %v, want sorted by basename", got)
	}
}
