// Package matcher decides whether a parsed account record refers to an
// already-persisted account. Matching runs in three tiers of decreasing
// strictness; for each account the first tier that matches wins, and the
// strongest tier across all accounts decides the overall winner.
package matcher

import (
	"strings"

	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/models"
	"spospordo/snapledger/internal/textutils"
)

// Policy holds the matching knobs exposed through configuration.
type Policy struct {
	// CaseSensitive controls the exact tier. The default is case-insensitive;
	// OCR output does not preserve casing reliably.
	CaseSensitive bool
}

// tier is a pure predicate comparing a record name against one match key.
type tier struct {
	name  string
	match func(recordName, key string) bool
}

// Matcher evaluates records against existing accounts.
type Matcher struct {
	tiers  []tier
	logger logging.Logger
}

// Result describes a successful match.
type Result struct {
	// Index is the position of the matched account in the slice passed to Match.
	Index int
	// Tier names the tier that produced the match.
	Tier string
	// Ambiguous is set when more than one account qualified at the winning
	// tier. The most recently updated account wins the tie-break.
	Ambiguous bool
	// Candidates lists the names of all accounts that qualified at the
	// winning tier, for ambiguity reporting.
	Candidates []string
}

// New creates a Matcher with the standard three tiers: exact, substring,
// normalized.
func New(policy Policy, logger logging.Logger) *Matcher {
	if logger == nil {
		logger = logging.GetLogger()
	}

	equalFold := func(a, b string) bool { return strings.EqualFold(a, b) }
	contains := func(a, b string) bool {
		la, lb := strings.ToLower(a), strings.ToLower(b)
		return strings.Contains(la, lb) || strings.Contains(lb, la)
	}
	if policy.CaseSensitive {
		equalFold = func(a, b string) bool { return a == b }
		contains = func(a, b string) bool {
			return strings.Contains(a, b) || strings.Contains(b, a)
		}
	}

	return &Matcher{
		logger: logger.WithField("component", "AccountMatcher"),
		tiers: []tier{
			{name: "exact", match: equalFold},
			{name: "substring", match: contains},
			{name: "normalized", match: func(recordName, key string) bool {
				nr := textutils.NormalizeForComparison(recordName)
				nk := textutils.NormalizeForComparison(key)
				if nr == "" || nk == "" {
					return false
				}
				return nr == nk || strings.Contains(nr, nk) || strings.Contains(nk, nr)
			}},
		},
	}
}

// Match returns the best-matching existing account for the record, or
// ok=false when no account qualifies and the caller should create a new one.
// Only Name and PreviousNames are compared; DisplayName is a cosmetic
// override and must never influence matching, otherwise an admin rename would
// make future uploads create duplicates.
func (m *Matcher) Match(record models.AccountRecord, accounts []models.Account) (Result, bool) {
	winningTier := len(m.tiers)
	var winners []int

	for i := range accounts {
		t := m.accountTier(record.Name, &accounts[i])
		if t < 0 || t > winningTier {
			continue
		}
		if t < winningTier {
			winningTier = t
			winners = winners[:0]
		}
		winners = append(winners, i)
	}

	if len(winners) == 0 {
		return Result{}, false
	}

	best := winners[0]
	for _, i := range winners[1:] {
		if accounts[i].UpdatedAt.After(accounts[best].UpdatedAt) {
			best = i
		}
	}

	result := Result{
		Index:     best,
		Tier:      m.tiers[winningTier].name,
		Ambiguous: len(winners) > 1,
	}
	if result.Ambiguous {
		for _, i := range winners {
			result.Candidates = append(result.Candidates, accounts[i].Name)
		}
		m.logger.WithFields(
			logging.Field{Key: "record", Value: record.Name},
			logging.Field{Key: "tier", Value: result.Tier},
			logging.Field{Key: "candidates", Value: result.Candidates},
		).Warn("Ambiguous account match, using most recently updated")
	}

	return result, true
}

// accountTier returns the index of the strongest tier matching any of the
// account's keys, or -1. Once a tier matches for this account, weaker tiers
// are not consulted.
func (m *Matcher) accountTier(recordName string, account *models.Account) int {
	for tierIndex, t := range m.tiers {
		for _, key := range account.MatchKeys() {
			if key == "" {
				continue
			}
			if t.match(recordName, key) {
				return tierIndex
			}
		}
	}
	return -1
}
