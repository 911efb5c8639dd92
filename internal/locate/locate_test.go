package locate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWithFallbackFindsLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sidid.cfg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := WithFallback(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Fatalf("got %q, want %q", got, path)
	}
}

func TestWithFallbackErrorsWhenMissingEverywhere(t *testing.T) {
	if _, err := WithFallback("does-not-exist-anywhere.cfg"); err == nil {
		t.Fatal("expected error")
	}
}

func TestConfigPathDefaultsWhenFlagNotGiven(t *testing.T) {
	if _, err := ConfigPath("", false, "sidid.cfg"); err == nil {
		t.Fatal("expected error since default sidid.cfg is unlikely to exist in test dir")
	}
}

func TestConfigPathErrorsOnExplicitEmptyFlag(t *testing.T) {
	_, err := ConfigPath("", true, "sidid.cfg")
	if err == nil {
		t.Fatal("expected error for explicit empty config file")
	}
}

func TestInfoPathSwapsExtension(t *testing.T) {
	dir := t.TempDir()
	nfoPath := filepath.Join(dir, "sidid.nfo")
	if err := os.WriteFile(nfoPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "sidid.cfg")
	got, err := InfoPath(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nfoPath {
		t.Fatalf("got %q, want %q", got, nfoPath)
	}
}
