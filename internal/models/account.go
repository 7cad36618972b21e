// Package models holds the domain types shared across the application:
// accounts, their balance history, parsed records and ingest outcomes.
package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxHistoryEntries caps the balance history kept per account. When the cap
// is reached the oldest entries are evicted.
const MaxHistoryEntries = 1000

// HistorySource records how a balance observation entered the system.
type HistorySource string

const (
	SourceManual     HistorySource = "manual"
	SourceScreenshot HistorySource = "screenshot"
)

// HistoryEntry is one balance observation.
type HistoryEntry struct {
	Date    time.Time       `json:"date" csv:"date"`
	Balance decimal.Decimal `json:"balance" csv:"balance"`
	Source  HistorySource   `json:"source" csv:"source"`
}

// Account is one tracked account in the persisted collection.
type Account struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DisplayName   *string         `json:"displayName,omitempty"`
	PreviousNames []string        `json:"previousNames,omitempty"`
	Category      Category        `json:"category"`
	Balance       decimal.Decimal `json:"balance"`
	History       []HistoryEntry  `json:"history"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewAccount creates an account with a fresh ID and a single history entry
// seeded from the initial balance.
func NewAccount(name string, category Category, balance decimal.Decimal, effectiveDate time.Time, source HistorySource) Account {
	return Account{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Balance:   balance,
		UpdatedAt: effectiveDate,
		History: []HistoryEntry{
			{Date: effectiveDate, Balance: balance, Source: source},
		},
	}
}

// EffectiveName returns the display name when one is set, otherwise the
// account name.
func (a *Account) EffectiveName() string {
	if a.DisplayName != nil && *a.DisplayName != "" {
		return *a.DisplayName
	}
	return a.Name
}

// MatchKeys returns the names the matcher may compare a record against: the
// account name plus any previous names. DisplayName is deliberately absent.
func (a *Account) MatchKeys() []string {
	keys := make([]string, 0, 1+len(a.PreviousNames))
	keys = append(keys, a.Name)
	keys = append(keys, a.PreviousNames...)
	return keys
}

// AppendHistory adds an entry, re-sorts by date and evicts the oldest
// entries beyond limit.
func (a *Account) AppendHistory(entry HistoryEntry, limit int) {
	a.History = append(a.History, entry)
	a.SortHistory()
	if limit > 0 && len(a.History) > limit {
		a.History = a.History[len(a.History)-limit:]
	}
}

// SortHistory orders the history by date, oldest first.
func (a *Account) SortHistory() {
	sort.SliceStable(a.History, func(i, j int) bool {
		return a.History[i].Date.Before(a.History[j].Date)
	})
}
