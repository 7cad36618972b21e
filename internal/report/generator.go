// Package report builds the admin-facing summary of an ingest or of the
// current account collection.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"spospordo/snapledger/internal/currencyutils"
	"spospordo/snapledger/internal/models"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Summary aggregates the outcomes of one ingest together with the resulting
// balance-sheet totals.
type Summary struct {
	EffectiveDate  time.Time                           `json:"effectiveDate"`
	Created        int                                 `json:"created"`
	Updated        int                                 `json:"updated"`
	Warnings       []string                            `json:"warnings,omitempty"`
	Outcomes       []models.Outcome                    `json:"outcomes"`
	CategoryTotals map[models.Category]decimal.Decimal `json:"categoryTotals"`
	NetWorth       decimal.Decimal                     `json:"netWorth"`
}

// BuildSummary folds the per-record outcomes and the final account collection
// into a Summary. Liability balances are subtracted from net worth; all other
// categories add to it.
func BuildSummary(outcomes []models.Outcome, accounts []models.Account, effectiveDate time.Time) *Summary {
	s := &Summary{
		EffectiveDate:  effectiveDate,
		Outcomes:       outcomes,
		CategoryTotals: make(map[models.Category]decimal.Decimal, len(models.AllCategories)),
		NetWorth:       decimal.Zero,
	}

	for _, outcome := range outcomes {
		switch outcome.Action {
		case models.ActionCreated:
			s.Created++
		case models.ActionUpdated:
			s.Updated++
		}
		s.Warnings = append(s.Warnings, outcome.Warnings...)
	}

	for _, category := range models.AllCategories {
		s.CategoryTotals[category] = decimal.Zero
	}
	for _, account := range accounts {
		s.CategoryTotals[account.Category] = s.CategoryTotals[account.Category].Add(account.Balance)
		if account.Category.IsLiability() {
			s.NetWorth = s.NetWorth.Sub(account.Balance)
		} else {
			s.NetWorth = s.NetWorth.Add(account.Balance)
		}
	}

	return s
}

// JSON renders the summary as indented JSON.
func (s *Summary) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return data, nil
}

// Render writes a human-readable summary. Counts are bolded and liabilities
// shown in red when the writer supports color.
func (s *Summary) Render(w io.Writer) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	fmt.Fprintf(w, "Effective date: %s\n", s.EffectiveDate.Format("2006-01-02"))
	fmt.Fprintf(w, "%s new account(s) created, %s updated\n",
		bold.Sprint(s.Created), bold.Sprint(s.Updated))

	for _, warning := range s.Warnings {
		fmt.Fprintf(w, "%s %s\n", red.Sprint("warning:"), warning)
	}

	fmt.Fprintln(w)
	for _, category := range models.AllCategories {
		total := s.CategoryTotals[category]
		formatted := currencyutils.FormatUSD(total)
		if category.IsLiability() && !total.IsZero() {
			formatted = red.Sprint(formatted)
		}
		fmt.Fprintf(w, "%-14s %s\n", category.Label(), formatted)
	}

	networth := currencyutils.FormatUSD(s.NetWorth)
	if s.NetWorth.IsNegative() {
		networth = red.Sprint(networth)
	} else {
		networth = green.Sprint(networth)
	}
	fmt.Fprintf(w, "%-14s %s\n", "Net worth", networth)
}
