package models

import "github.com/shopspring/decimal"

// AccountRecord is one parsed account line from a screenshot: the cleaned
// name, the balance and the category in effect when the line was seen.
type AccountRecord struct {
	Name     string
	Balance  decimal.Decimal
	Category Category
}

// Action describes what an ingest did with one record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Outcome reports how one record was applied.
type Outcome struct {
	Action      Action   `json:"action"`
	AccountID   string   `json:"accountId"`
	AccountName string   `json:"accountName"`
	MatchTier   string   `json:"matchTier,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}
