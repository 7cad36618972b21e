// Package textutils provides text cleanup utilities for OCR output.
package textutils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// 1-3 lowercase letters glued onto a capitalized word, e.g. "anHome
	// Projects". OCR reads the account's icon glyph as stray letters.
	iconContamination = regexp.MustCompile(`^([a-z]{1,3})([A-Z])`)

	// A single capital letter followed by a space, e.g. "G My Personal Cash
	// Account". The glyph is read as a standalone letter.
	iconGlyph = regexp.MustCompile(`^([A-Z])\s`)

	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// protectedLeadingLetters are single letters that legitimately start account
// names ("A Special Account", "I Bonds") and must never be stripped as glyphs.
var protectedLeadingLetters = map[string]bool{
	"a": true,
	"i": true,
}

// CollapseWhitespace trims the string and collapses internal whitespace runs
// to a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// NormalizeLine cleans one line of OCR output: whitespace is collapsed and
// icon contamination is removed from the front. The result may be empty, which
// callers treat as "no name". NormalizeLine is idempotent and never fails.
func NormalizeLine(raw string) string {
	line := CollapseWhitespace(raw)

	// Stripping a glyph can expose another contaminated prefix, so run the
	// rules to a fixpoint. Each round shortens the string, so this terminates.
	for {
		stripped := stripIconPrefix(line)
		if stripped == line {
			return line
		}
		line = stripped
	}
}

func stripIconPrefix(line string) string {
	if m := iconContamination.FindStringSubmatch(line); m != nil {
		return line[len(m[1]):]
	}

	if m := iconGlyph.FindStringSubmatch(line); m != nil {
		if !protectedLeadingLetters[strings.ToLower(m[1])] {
			return strings.TrimSpace(line[len(m[1]):])
		}
	}

	return line
}

// NormalizeForComparison reduces a name to its loosest comparable form:
// lowercase with every run of non-alphanumeric characters collapsed to a
// single space. Used by the weakest matching tier to absorb punctuation and
// spacing drift in OCR output.
func NormalizeForComparison(s string) string {
	lowered := strings.ToLower(s)
	return strings.TrimSpace(nonAlphanumeric.ReplaceAllString(lowered, " "))
}
