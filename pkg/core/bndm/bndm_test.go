package bndm

import (
	"bytes"
	"strings"
	"testing"
)

func TestFindNoWildcard(t *testing.T) {
	source := []byte("The quick brown fox jumps over the lazy dog")
	p := Compile([]byte("jumps"), -1)
	if got := p.Find(source); got != 20 {
		t.Fatalf("Find() = %d, want 20", got)
	}
}

func TestFindWithWildcard(t *testing.T) {
	source := []byte("The quick brown fox jumps over the lazy dog")
	p := Compile([]byte("j?mps"), '?')
	if got := p.Find(source); got != 20 {
		t.Fatalf("Find() = %d, want 20", got)
	}
}

func TestFindLongPatternNoMatch(t *testing.T) {
	source := bytes.Repeat([]byte{'a'}, 128)
	pattern := append(bytes.Repeat([]byte{'a'}, 67), 'b')
	p := Compile(pattern, -1)
	if got := p.Find(source); got != -1 {
		t.Fatalf("Find() = %d, want -1", got)
	}
}

func TestFindLongPatternMatchAtStart(t *testing.T) {
	source := append(append(bytes.Repeat([]byte{'a'}, 67), 'b'), bytes.Repeat([]byte{'a'}, 60)...)
	pattern := append(bytes.Repeat([]byte{'a'}, 67), 'b')
	p := Compile(pattern, -1)
	if got := p.Find(source); got != 0 {
		t.Fatalf("Find() = %d, want 0", got)
	}
}

func TestEmptyPatternNeverMatches(t *testing.T) {
	p := Compile(nil, -1)
	if got := p.Find([]byte("anything")); got != -1 {
		t.Fatalf("Find() = %d, want -1", got)
	}
}

func TestPatternLongerThanSourceNeverMatches(t *testing.T) {
	p := Compile([]byte("abcdef"), -1)
	if got := p.Find([]byte("abc")); got != -1 {
		t.Fatalf("Find() = %d, want -1", got)
	}
}

func TestSingleByteWildcardTrivialMatch(t *testing.T) {
	p := Compile([]byte{'?'}, '?')
	if got := p.Find([]byte("xyz")); got != 0 {
		t.Fatalf("Find() = %d, want 0", got)
	}
	if got := p.Find(nil); got != -1 {
		t.Fatalf("Find(nil) = %d, want -1", got)
	}
}

func TestWildcardMatchesAnyByte(t *testing.T) {
	source := []byte{0x10, 0x20, 0x30, 0x40}
	p := Compile([]byte{0x10, 0xFF, 0x30, 0x40}, 0xFF)
	if got := p.Find(source); got != 0 {
		t.Fatalf("Find() = %d, want 0", got)
	}
}

// TestStressTailPositions exercises window-skip behaviour with an
// all-'a' source and a pattern that ends in a 'b' at various positions
// straddling the 64/32-bit word boundary.
func TestStressTailPositions(t *testing.T) {
	for tail := 63; tail <= 68; tail++ {
		source := bytes.Repeat([]byte{'a'}, 128)
		source[tail] = 'b'
		pattern := append(bytes.Repeat([]byte{'a'}, tail), 'b')
		p := Compile(pattern, -1)
		want := tail - len(pattern) + 1
		if want < 0 {
			want = 0
		}
		got := p.Find(source)
		if got == -1 || source[got+len(pattern)-1] != 'b' {
			t.Fatalf("tail=%d: Find() = %d, expected a valid match ending in 'b'", tail, got)
		}
		if !bytes.Equal(source[got:got+len(pattern)], pattern) {
			t.Fatalf("tail=%d: match at %d does not equal pattern", tail, got)
		}
	}
}

func TestFindIsLeftmost(t *testing.T) {
	source := []byte("abcabcabc")
	p := Compile([]byte("abc"), -1)
	if got := p.Find(source); got != 0 {
		t.Fatalf("Find() = %d, want 0 (leftmost)", got)
	}
}

func TestFindPositionPreservingUnderConcatenation(t *testing.T) {
	prefix := []byte("no occurrence of the needle here, none at all")
	needle := []byte("needle-like-thing")
	p := Compile(needle, -1)
	if p.Find(prefix) != -1 {
		t.Fatal("prefix should not contain the pattern")
	}
	full := append(append([]byte(nil), prefix...), []byte("xxneedle-like-thingyy")...)
	got := p.Find(full)
	want := strings.Index(string(full), string(needle))
	if got != want {
		t.Fatalf("Find() = %d, want %d", got, want)
	}
}
