// Package scanner implements the per-file signature scanning
// procedure: locate the payload past any container header, then test
// each signature's sub-patterns against it in order.
package scanner

import (
	"github.com/c64music/sidid/pkg/core/container"
	"github.com/c64music/sidid/pkg/core/filebuf"
	"github.com/c64music/sidid/pkg/core/signature"
)

// Scan reads the file at path and matches it against signatures in
// order. When scanForMultiple is false, scanning stops after the
// first signature that matches in full. Consecutive matches sharing a
// name are deduplicated, keeping only the first. An I/O error is
// swallowed: the file is silently skipped.
func Scan(path string, signatures signature.Set, scanForMultiple bool) []signature.Match {
	data, err := filebuf.Read(path)
	if err != nil {
		return nil
	}
	defer filebuf.Release(data)

	return ScanBuffer(path, data, signatures, scanForMultiple)
}

// ScanBuffer runs the scanning procedure against an already-loaded
// buffer, for callers that have the bytes in hand (tests, or a
// find_players_in_buffer-style API).
func ScanBuffer(path string, data []byte, signatures signature.Set, scanForMultiple bool) []signature.Match {
	dataOffset := container.Offset(path, data)

	var matches []signature.Match
	for _, sig := range signatures {
		cursor := dataOffset
		offsets := make([]int, 0, len(sig.SubPatterns))
		matched := true

		for _, sp := range sig.SubPatterns {
			if cursor > len(data) {
				matched = false
				break
			}
			idx := sp.Find(data[cursor:])
			if idx == -1 {
				matched = false
				break
			}
			offsets = append(offsets, cursor+idx)
			cursor += idx + sp.Len()
		}

		if matched && len(offsets) == len(sig.SubPatterns) {
			matches = append(matches, signature.Match{Name: sig.Name, Offsets: offsets})
			if !scanForMultiple {
				break
			}
		}
	}

	return dedupeConsecutive(matches)
}

// dedupeConsecutive keeps only the first of any run of matches sharing
// a case-sensitive name, mirroring how a single signature name can
// legally appear as several alternative value lines in the config.
func dedupeConsecutive(matches []signature.Match) []signature.Match {
	if len(matches) < 2 {
		return matches
	}
	out := matches[:1]
	for _, m := range matches[1:] {
		if out[len(out)-1].Name == m.Name {
			continue
		}
		out = append(out, m)
	}
	return out
}
