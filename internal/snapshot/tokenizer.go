package snapshot

import (
	"spospordo/snapledger/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// Tokenize splits a candidate line into its account name and trailing
// balance. It returns ok=false when the line has no trailing amount, the name
// is empty after trimming, or the amount is negative.
//
// Negative amounts are rejected rather than folded into a positive magnitude:
// liabilities carry their sign through the category, so a literal "-$500" is
// treated as a parse failure for that line.
//
// Names are accepted as-is, including single common words like "Account" or
// "Individual". Screenshots wrap long names across lines, so a generic
// remnant is frequently a real account name.
func Tokenize(line string) (name string, balance decimal.Decimal, ok bool) {
	name, rawAmount, found := currencyutils.ExtractTrailingAmount(line)
	if !found || name == "" {
		return "", decimal.Zero, false
	}

	amount, err := currencyutils.ParseAmount(rawAmount)
	if err != nil || amount.IsNegative() {
		return "", decimal.Zero, false
	}

	return name, amount, true
}
