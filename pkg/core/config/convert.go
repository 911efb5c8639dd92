package config

import (
	"fmt"
	"strings"

	"github.com/c64music/sidid/pkg/core/signature"
)

// ConvertToText re-serializes signatures back into config file text, in
// either the old (AND/END-terminated, multi-line) or new (&&-joined,
// single-line) grammar. Lines are CRLF-terminated, matching the
// Windows-1252 config files this tool round-trips.
func ConvertToText(signatures signature.Set, newFormat bool) string {
	var lines []string
	previousName := ""

	for _, sig := range signatures {
		if sig.Name != previousName {
			if len(lines) > 0 && !strings.HasPrefix(sig.Name, "(") {
				lines = append(lines, "\r\n"+sig.Name)
			} else {
				lines = append(lines, sig.Name)
			}
		}
		previousName = sig.Name

		sep := " AND "
		if newFormat {
			sep = " && "
		}
		parts := make([]string, len(sig.SubPatterns))
		for i, sp := range sig.SubPatterns {
			parts[i] = subPatternText(sp)
		}
		line := strings.Join(parts, sep)
		if !newFormat {
			line += " END"
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\r\n") + "\r\n"
}

func subPatternText(sp signature.SubPattern) string {
	tokens := make([]string, len(sp.Bytes))
	for i, b := range sp.Bytes {
		if sp.Wildcard >= 0 && int(b) == sp.Wildcard {
			tokens[i] = "??"
			continue
		}
		tokens[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(tokens, " ")
}
