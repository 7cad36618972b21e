// Package currencyutils provides amount parsing and formatting for the
// currency strings found in OCR output.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// trailingAmount matches a monetary token at the end of a line: an optional
// sign and currency symbol followed by digits with optional thousands
// separators and decimals. Examples: "$1,234.56", "1,234", "-$500", "1234".
var trailingAmount = regexp.MustCompile(`(-?\s*\$?\s*-?[0-9][0-9,]*(?:\.[0-9]+)?)$`)

// ExtractTrailingAmount splits a line into its name prefix and the raw
// monetary token at its end. Returns ok=false when the line does not end in
// an amount.
func ExtractTrailingAmount(line string) (name string, rawAmount string, ok bool) {
	m := trailingAmount.FindStringIndex(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(line[:m[0]]), strings.TrimSpace(line[m[0]:]), true
}

// ParseAmount parses a currency token into a decimal. It strips the dollar
// sign, thousands separators and internal spaces; a leading minus sign is
// preserved so callers can enforce their own sign convention.
func ParseAmount(raw string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(raw)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount string")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", raw, err)
	}
	return amount, nil
}

// StandardizeAmount converts a currency token to a form decimal.NewFromString
// accepts. "$1,234.56" becomes "1234.56" and "-$500" becomes "-500".
func StandardizeAmount(raw string) string {
	s := strings.TrimSpace(raw)

	// The sign may appear before or after the currency symbol ("-$500",
	// "$-500").
	negative := strings.Contains(s, "-")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	if negative {
		s = "-" + s
	}
	return s
}

// FormatUSD renders an amount as a dollar string with two decimal places,
// e.g. "$1234.56" or "-$500.00".
func FormatUSD(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}
