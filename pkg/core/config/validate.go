package config

import (
	"fmt"
	"strings"

	"github.com/c64music/sidid/pkg/core/signature"
)

// Issue is one human-readable validation diagnostic line, as printed by
// the -v CLI flag.
type Issue string

// ValidateConfigLines checks config file lines against every naming,
// formatting, and ordering rule a signature database must satisfy,
// returning every diagnostic found. It never stops early: a malformed
// line is reported and validation continues so all issues surface in
// one pass.
func ValidateConfigLines(lines []string) []Issue {
	var issues []Issue
	add := func(format string, args ...any) {
		issues = append(issues, Issue(fmt.Sprintf(format, args...)))
	}

	namesAdded := map[string]bool{} // upper name -> has a value line yet
	hadIssue := false
	lastEmptyLine := -1
	name := ""
	var pending []string

	flushWithoutValueAndLines := func() {
		if name != "" && !namesAdded[strings.ToUpper(name)] {
			hadIssue = true
			add("Signature name found without a value: %s", name)
		}
		for _, l := range pending {
			if validateSignatureValue(add, name, l) {
				hadIssue = true
			}
		}
		pending = nil
	}

	for i, raw := range lines {
		lineNumber := i + 1
		text := strings.TrimSpace(raw)

		if isSignatureMinLength(text) {
			if isSignatureName(text) {
				flushWithoutValueAndLines()

				name = text
				if validateSignatureName(add, name, namesAdded) {
					hadIssue = true
				}
				namesAdded[strings.ToUpper(name)] = false
			} else {
				if name == "" {
					hadIssue = true
					if strings.EqualFold(text, "END") || strings.EqualFold(text, "AND") {
						add("Signature name cannot be a reserved word at line: %d", lineNumber)
					} else {
						add("Signature found without a name: %s", text)
					}
				}
				pending = append(pending, text)
				if hasEndMarker(text) {
					if validateSignatureValue(add, name, strings.Join(pending, " ")) {
						hadIssue = true
					}
					pending = nil
				}
				namesAdded[strings.ToUpper(name)] = true
			}
			if validateSpaces(add, name, text, len(raw), len(text)) {
				hadIssue = true
			}
		} else {
			if text == "" && raw != "" {
				hadIssue = true
				add("Line found with only spaces")
			}

			flushWithoutValueAndLines()

			if text != "" {
				hadIssue = true
				add("Invalid signature found. Signature name should be at least 3 characters long and signature value line should have at least 2 valid characters: %s", text)
				namesAdded[strings.ToUpper(name)] = true
			}

			if raw == "" && lastEmptyLine == lineNumber-1 {
				hadIssue = true
				add("Two consecutive empty lines found at line: %d", lineNumber)
			}

			if hadIssue {
				namesAdded[strings.ToUpper(name)] = true
			} else {
				name = ""
			}
			lastEmptyLine = lineNumber
		}
	}
	flushWithoutValueAndLines()

	return issues
}

func validateSignatureName(add func(string, ...any), name string, namesAdded map[string]bool) bool {
	issue := false
	if strings.Contains(name, " ") {
		issue = true
		add("Signature name contains spaces or invalid signature value: %s", name)
	}
	if _, ok := namesAdded[strings.ToUpper(name)]; ok {
		issue = true
		add("Signature defined more than once or with different casing: %s", name)
	}
	return issue
}

func validateSpaces(add func(string, ...any), name, text string, lineLen, textLen int) bool {
	if lineLen != textLen {
		add("Signature contains spaces at beginning or at the end of the line: %s", name)
		return true
	}
	if strings.Contains(text, "  ") {
		add("Signature contains double spaces: %s", name)
		return true
	}
	return false
}

func validateSignatureValue(add func(string, ...any), name, text string) bool {
	issue := false
	upper := strings.ToUpper(text)

	if text != upper {
		issue = true
		add("Signature contains lowercase characters: %s", name)
	}

	withoutEnd := strings.ReplaceAll(text, " END", "")
	if len(withoutEnd) <= 4 {
		issue = true
		add("Invalid signature found. Signature value should have at least 2 values separated with a space: %s", name)
	}

	if strings.HasSuffix(withoutEnd, " AND") || strings.HasSuffix(withoutEnd, " &&") {
		issue = true
		add("Signature should not end with an AND or && operator: %s", name)
	}

	for _, part := range strings.Split(upper, " AND ") {
		for _, subPart := range strings.Split(part, " && ") {
			if validateSignatureRange(add, name, subPart) {
				issue = true
			}
		}
	}
	return issue
}

func validateSignatureRange(add func(string, ...any), name, text string) bool {
	issue := false
	words := strings.Fields(text)
	for index, word := range words {
		if index == MaxSubPatternBytes && word != "END" {
			issue = true
			add("Signature cannot be larger than 254 bytes: %s", name)
		}
		switch word {
		case "??":
			atEnd := index == len(words)-1 || strings.EqualFold(words[index+1], "END")
			if index == 0 || atEnd {
				issue = true
				add("Signature ID or SUB ID (with AND operator) should not begin or end with a wildcard: %s", name)
			}
		case "END":
			if index != len(words)-1 {
				issue = true
				add("Signature END operator can only be present at the end of the line: %s", name)
			}
		case "AND", "&&":
			if index == 0 {
				issue = true
				add("Signature should not begin with an AND or && operator: %s", name)
			}
		default:
			if !isTwoHexDigits(word) {
				issue = true
				add("Unsupported value '%s' in signature: %s", word, name)
			}
		}
	}
	return issue
}

func isTwoHexDigits(word string) bool {
	if word == "" {
		return true
	}
	if len(word) != 2 {
		return false
	}
	for _, c := range word {
		if !isHexDigit(byte(c)) {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'F':
		return true
	case b >= 'a' && b <= 'f':
		return true
	}
	return false
}

// ValidateInfoLines checks info file lines against the info file
// rules, cross-referencing signature names against signatures (the
// already-parsed config).
func ValidateInfoLines(lines []string, signatures signature.Set) []Issue {
	var issues []Issue
	add := func(format string, args ...any) {
		issues = append(issues, Issue(fmt.Sprintf(format, args...)))
	}

	namesAdded := map[string]bool{}
	lastEmptyLine := -1
	name := ""
	previousTag := ""
	infoLineFound := false
	nameFound := false

	for i, line := range lines {
		lineNumber := i + 1
		trimmedEnd := strings.TrimRight(line, " \t")
		if len(trimmedEnd) != len(line) {
			add("Space(s) found at the end of the line on line: %d", lineNumber)
		}
		text := strings.TrimSpace(trimmedEnd)

		switch {
		case isInfoTag(line):
			if !nameFound {
				add("Info found without a signature name at line: %d", lineNumber)
				previousTag = ""
			}
			tag := ""
			if len(line) >= 10 {
				tag = strings.TrimSpace(line[:10])
			}
			validateInfoTag(add, name, tag, previousTag)

			value := ""
			if len(line) > 11 {
				value = line[11:]
			}
			validateInfoTagValue(add, name, tag, value)

			if tag != "" {
				previousTag = tag
			}
			infoLineFound = true
		case isSignatureName(text):
			validateSignatureExistsInConfig(add, signatures, text)

			if nameFound && !infoLineFound {
				add("Signature name found without any info: %s", name)
			}
			if idx := strings.IndexByte(text, ':'); idx != -1 {
				add("Wrong indentation '%s' or invalid tag in: %s", text[:idx+1], name)
				continue
			}
			validateSignatureName(add, text, namesAdded)

			previousTag = ""
			name = text
			namesAdded[strings.ToUpper(text)] = true
			nameFound = true
			infoLineFound = false
		default:
			if nameFound && !infoLineFound {
				add("Signature name found without any info: %s", name)
			}
			if line == "" && lastEmptyLine == lineNumber-1 {
				add("Two consecutive empty lines found at line: %d", lineNumber)
			}
			lastEmptyLine = lineNumber
			nameFound = false
			infoLineFound = false
		}
	}

	return issues
}

func validateSignatureExistsInConfig(add func(string, ...any), signatures signature.Set, name string) {
	for _, s := range signatures {
		if s.Name == name {
			return
		}
	}
	add("Signature ID not found in config file: %s", name)
}

func validateInfoTagValue(add func(string, ...any), name, tag, value string) {
	if len(value) > 0 {
		if r := rune(value[0]); r == ' ' || r == '\t' {
			add("Value in '%s' is not correctly aligned in: %s", strings.TrimSpace(tag), name)
		}
	}
	if strings.EqualFold(tag, "REFERENCE:") && !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(value)), "HTTP") {
		add("Reference has an invalid URL in signature: %s", name)
	}
}

func validateInfoTag(add func(string, ...any), name, tag, previousTag string) {
	switch tag {
	case "", "AUTHOR:", "RELEASED:", "NAME:", "REFERENCE:", "COMMENT:":
		validateOrder(add, name, tag, previousTag)
	default:
		add("Invalid tag found '%s' in signature: %s", tag, name)
	}
}

func validateOrder(add func(string, ...any), name, tag, previousTag string) {
	if previousTag == "" {
		return
	}
	tagOrder := tagOrderOf(tag)
	previousOrder := tagOrderOf(previousTag)

	if tagOrder <= previousOrder {
		add("Order of tags '%s' '%s' is not valid: %s", tag, previousTag, name)
	}
	if tagOrder == 6 && previousOrder < 5 {
		add("Multi-line not allowed for tag '%s' in: %s", previousTag, name)
	}
}

func tagOrderOf(tag string) int {
	switch strings.TrimSpace(tag) {
	case "NAME:":
		return 1
	case "AUTHOR:":
		return 2
	case "RELEASED:":
		return 3
	case "REFERENCE:":
		return 4
	case "COMMENT:":
		return 5
	case "":
		return 6
	default:
		return 0
	}
}
