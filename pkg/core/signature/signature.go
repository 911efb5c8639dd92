// Package signature is the in-memory model for a named C64 player
// signature: an ordered list of sub-patterns that must all be found, in
// order and without overlap, for the signature to match a file.
package signature

import "github.com/c64music/sidid/pkg/core/bndm"

// WildcardToken is the sentinel a caller pushes into the token slice
// passed to NewSubPattern to mean "the lexer saw a ?? here". It sits
// outside the 0x00-0xFF literal byte range so it can never collide with
// a real byte value.
const WildcardToken = 0x100

// noWildcard marks a sub-pattern that never uses a wildcard byte.
const noWildcard = -1

// SubPattern is one AND-joined byte pattern within a Signature, paired
// with its compiled matcher. Bytes holds the pattern with every
// WildcardToken already resolved to the chosen wildcard byte value, so
// that re-emitting the pattern as text (see config.ConvertToText) can map
// the wildcard byte back to "??".
type SubPattern struct {
	Bytes    []byte
	Wildcard int // chosen wildcard byte value, or -1 if none

	matcher *bndm.Pattern
}

// NewSubPattern selects a wildcard byte for tokens and compiles the
// resulting pattern. tokens holds literal byte values
// (0x00-0xFF) and WildcardToken markers. ok is false when the
// sub-pattern must be dropped: it uses a wildcard but every byte value
// 0x00-0xFF already occurs as a literal, so no distinguishable wildcard
// byte exists.
func NewSubPattern(tokens []int) (sp SubPattern, ok bool) {
	var used [256]bool
	usesWildcard := false
	for _, tok := range tokens {
		if tok == WildcardToken {
			usesWildcard = true
			continue
		}
		used[tok] = true
	}

	wildcard := noWildcard
	for b := 0; b < 256; b++ {
		if !used[b] {
			wildcard = b
			break
		}
	}

	if wildcard == noWildcard && usesWildcard {
		return SubPattern{}, false
	}

	bytes := make([]byte, len(tokens))
	for i, tok := range tokens {
		if tok == WildcardToken {
			bytes[i] = byte(wildcard)
		} else {
			bytes[i] = byte(tok)
		}
	}

	matcherWildcard := noWildcard
	if usesWildcard {
		matcherWildcard = wildcard
	}
	return SubPattern{
		Bytes:    bytes,
		Wildcard: matcherWildcard,
		matcher:  bndm.Compile(bytes, matcherWildcard),
	}, true
}

// Len reports the number of bytes in the sub-pattern.
func (s SubPattern) Len() int { return len(s.Bytes) }

// Find locates the sub-pattern in source, returning the index of the
// first match or -1.
func (s SubPattern) Find(source []byte) int {
	if s.matcher == nil {
		return -1
	}
	return s.matcher.Find(source)
}

// Signature is a named rule: it matches a file iff every sub-pattern
// matches, strictly in order, with no overlap. Two signatures may share
// a Name to express alternative definitions of the same player.
type Signature struct {
	Name        string
	SubPatterns []SubPattern
}

// Set is an ordered collection of signatures. Iteration order is
// observable: it determines match-reporting order and the order in
// which consecutive same-name matches are deduplicated.
type Set []Signature

// Match is one signature's hit against a file: the signature name and
// the absolute byte offset at which each of its sub-patterns matched,
// in sub-pattern order.
type Match struct {
	Name    string
	Offsets []int
}
