// Package config turns sidid.cfg / sidid.nfo text (decoded as
// Windows-1252, one string per line) into signature sets and info
// blocks, following their line-oriented grammars.
package config

import "strings"

// DefaultConfigFileName is the basename used when no -f/SIDIDCFG path is
// given.
const DefaultConfigFileName = "sidid.cfg"

// MaxSubPatternBytes is the largest number of byte tokens a single
// sub-pattern may contain.
const MaxSubPatternBytes = 254

// isSignatureMinLength reports whether a trimmed line is long enough to
// be either a signature-name line or a signature-value line.
func isSignatureMinLength(text string) bool {
	return len(text) >= 2
}

// isSignatureName reports whether a trimmed line of at least 3
// characters opens a new signature block. A line is a name line when
// its third character is not a space, and either it is longer than 3
// characters or its first 3 characters (case-folded) are not the
// reserved tokens END/AND.
func isSignatureName(text string) bool {
	if len(text) < 3 {
		return false
	}
	if text[2] == ' ' {
		return false
	}
	if len(text) > 3 {
		return true
	}
	switch strings.ToUpper(text[:3]) {
	case "END", "AND":
		return false
	}
	return true
}

// isInfoTag reports whether line is an info tag line: at least 11
// characters, with either a ':' followed by a space at indices 9/10, or
// 11 leading spaces (a continuation line).
func isInfoTag(line string) bool {
	if len(line) < 11 {
		return false
	}
	if line[9] == ':' && line[10] == ' ' {
		return true
	}
	return line[:11] == "           "
}

// hasEndMarker reports whether text ends (case-insensitively) with the
// literal token "END".
func hasEndMarker(text string) bool {
	if len(text) < 3 {
		return false
	}
	return strings.EqualFold(text[len(text)-3:], "END")
}

// isConfigFileHeuristic checks whether a set of lines looks like a
// config file: the first non-blank name line must be immediately
// followed by a value line.
func isConfigFileHeuristic(lines []string) bool {
	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		line := lines[i]
		if isSignatureMinLength(line) && isSignatureName(line) {
			if i+1 < len(lines) {
				next := lines[i+1]
				return isSignatureMinLength(next) && !isSignatureName(next)
			}
		}
		return false
	}
	return false
}

// isInfoFileHeuristic implements the analogous check for info files: the
// first non-blank name line must be followed by an info tag line.
func isInfoFileHeuristic(lines []string) bool {
	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		line := lines[i]
		if isSignatureMinLength(line) && isSignatureName(line) && !isInfoTag(line) {
			if i+1 < len(lines) {
				next := lines[i+1]
				return isSignatureMinLength(next) && isInfoTag(next)
			}
		}
		return false
	}
	return false
}
