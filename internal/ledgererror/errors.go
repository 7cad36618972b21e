// Package ledgererror defines the typed errors shared across the ingest
// pipeline. Per-line problems in OCR input never surface as errors — they
// degrade to skipped lines. These types cover the conditions that do
// propagate: store failures, invalid caller input, and non-fatal warnings
// worth reporting to the admin.
package ledgererror

import (
	"fmt"
	"strings"
)

// StoreError wraps a failure while loading or saving the account store.
type StoreError struct {
	Path string
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("account store %s failed for '%s': %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError marks invalid caller-supplied input, such as an effective
// date in the future. These fail fast: they indicate a caller bug or bad
// admin input, not messy OCR text.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AmbiguousMatchWarning records that more than one account qualified for a
// record at the same matching tier. It is surfaced in outcomes, never
// returned as a hard error; the recency tie-break already picked a winner.
type AmbiguousMatchWarning struct {
	RecordName string
	Tier       string
	Candidates []string
}

func (w *AmbiguousMatchWarning) String() string {
	return fmt.Sprintf("ambiguous match for '%s' at %s tier between [%s]; most recently updated account was chosen",
		w.RecordName, w.Tier, strings.Join(w.Candidates, ", "))
}
