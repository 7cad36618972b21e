package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Whitespace only", "   \t  ", ""},
		{"Collapses internal whitespace", "My    Checking   Account", "My Checking Account"},
		{"Trims and collapses", "  My   Account  ", "My Account"},
		{"Lowercase icon contamination", "anHome Projects", "Home Projects"},
		{"Three-letter contamination", "xyzBrokerage", "Brokerage"},
		{"Single capital glyph", "G My Personal Cash Account", "My Personal Cash Account"},
		{"Protected letter A preserved", "A Special Account", "A Special Account"},
		{"Protected letter I preserved", "I Bonds", "I Bonds"},
		{"Glyph then contamination", "G anHome Projects", "Home Projects"},
		{"Plain name untouched", "My Roth IRA", "My Roth IRA"},
		{"Lowercase word not stripped", "and Home", "and Home"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeLine(tc.input))
		})
	}
}

func TestNormalizeLineIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"anHome Projects",
		"G My Personal Cash Account",
		"G anHome Projects",
		"A Special Account",
		"B C Something",
		"  My   Account  ",
		"xyzBrokerage $1,000",
	}

	for _, input := range inputs {
		once := NormalizeLine(input)
		assert.Equal(t, once, NormalizeLine(once), "normalize must be idempotent for %q", input)
	}
}

func TestNormalizeForComparison(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "My Roth IRA", "my roth ira"},
		{"Strips punctuation", "My-Personal Cash!!", "my personal cash"},
		{"Collapses separators", "My  --  Account", "my account"},
		{"Digits kept", "Plan 401k", "plan 401k"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeForComparison(tc.input))
		})
	}
}
