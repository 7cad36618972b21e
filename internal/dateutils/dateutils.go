// Package dateutils provides date parsing for admin-supplied effective dates.
package dateutils

import (
	"fmt"
	"time"

	"spospordo/snapledger/internal/ledgererror"
	"spospordo/snapledger/internal/textutils"
)

// Common date layouts accepted for the --date flag.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutUS       = "01/02/2006"
	DateLayoutEuropean = "02.01.2006"
)

// CommonFormats is the list of layouts tried in order when parsing a date.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutUS,
	DateLayoutEuropean,
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParseDate attempts to parse a date string using the common formats.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := textutils.CollapseWhitespace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseEffectiveDate resolves the effective date of an ingest. An empty
// string defaults to now; a parsed date in the future is rejected, since a
// balance cannot be effective before it was observed.
func ParseEffectiveDate(dateStr string, now time.Time) (time.Time, error) {
	if dateStr == "" {
		return now, nil
	}

	t, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, &ledgererror.ValidationError{Field: "effective date", Reason: err.Error()}
	}
	if t.After(now) {
		return time.Time{}, &ledgererror.ValidationError{
			Field:  "effective date",
			Reason: fmt.Sprintf("%s is in the future", t.Format(DateLayoutISO)),
		}
	}
	return t, nil
}
