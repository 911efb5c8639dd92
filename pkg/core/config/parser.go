package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c64music/sidid/pkg/core/signature"
)

// ErrNotConfigFile is returned by ReadConfigLines when lines do not
// look like a config file.
var ErrNotConfigFile = fmt.Errorf("not a config file")

// ReadConfigLines parses config file lines into a signature set. When
// nameFilter is non-empty, only signatures whose name matches it
// case-insensitively are kept.
func ReadConfigLines(lines []string, nameFilter string) (signature.Set, error) {
	if !isConfigFileHeuristic(lines) {
		return nil, ErrNotConfigFile
	}

	var signatures signature.Set
	name := ""
	var pending []string

	flush := func() {
		for _, line := range pending {
			appendSignatureLine(&signatures, nameFilter, name, line)
		}
		pending = pending[:0]
	}

	for _, raw := range lines {
		text := strings.TrimSpace(raw)
		switch {
		case isSignatureMinLength(text) && isSignatureName(text):
			flush()
			name = text
		case isSignatureMinLength(text):
			pending = append(pending, text)
			if hasEndMarker(text) {
				appendSignatureLine(&signatures, nameFilter, name, strings.Join(pending, " "))
				pending = pending[:0]
			}
		default:
			flush()
			name = ""
		}
	}
	flush()

	return signatures, nil
}

// appendSignatureLine tokenizes one textual sub-pattern sequence
// (possibly AND/&&/END-joined) under name and, if it passes nameFilter,
// appends the resulting Signature to signatures.
func appendSignatureLine(signatures *signature.Set, nameFilter, name, text string) {
	sig := parseSignatureValue(name, text)
	if nameFilter == "" || strings.EqualFold(nameFilter, name) {
		*signatures = append(*signatures, sig)
	}
}

// parseSignatureValue tokenizes text into one or more sub-patterns
// separated by AND/&&/END.
func parseSignatureValue(name, text string) signature.Signature {
	var tokens []int
	var subPatterns []signature.SubPattern

	flush := func() {
		if len(tokens) == 0 {
			return
		}
		if sp, ok := signature.NewSubPattern(tokens); ok {
			subPatterns = append(subPatterns, sp)
		}
		tokens = nil
	}

	for _, word := range strings.Fields(strings.ToUpper(text)) {
		if len(word) < 2 {
			continue
		}
		switch word {
		case "??":
			tokens = append(tokens, signature.WildcardToken)
		case "AND", "&&", "END":
			flush()
		default:
			tokens = append(tokens, hexByte(word[:2]))
		}
	}
	flush()

	return signature.Signature{Name: name, SubPatterns: subPatterns}
}

// hexByte parses a two-character hex token, best-effort: an unparsable
// token yields 0x00 rather than failing the whole parse.
func hexByte(tok string) int {
	v, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}
