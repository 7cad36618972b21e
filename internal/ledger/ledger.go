// Package ledger folds parsed account records into the persisted account
// collection: matched records update a balance and append history, unmatched
// records create accounts.
package ledger

import (
	"fmt"
	"time"

	"spospordo/snapledger/internal/ledgererror"
	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/matcher"
	"spospordo/snapledger/internal/models"
)

// Service applies record batches against an account snapshot.
type Service struct {
	matcher      *matcher.Matcher
	logger       logging.Logger
	historyLimit int
}

// NewService creates a ledger Service. The history limit defaults to
// models.MaxHistoryEntries when limit is zero or negative.
func NewService(m *matcher.Matcher, logger logging.Logger, historyLimit int) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if historyLimit <= 0 {
		historyLimit = models.MaxHistoryEntries
	}
	return &Service{
		matcher:      m,
		logger:       logger.WithField("component", "Ledger"),
		historyLimit: historyLimit,
	}
}

// Apply folds one upload's records into the account collection and returns
// the updated collection plus a per-record outcome in record order.
//
// All records are applied sequentially against the same in-memory snapshot:
// an account created by an earlier record of the batch is visible to the
// matcher for later records, so two records for the same new account update
// it instead of creating duplicates.
func (s *Service) Apply(records []models.AccountRecord, accounts []models.Account, effectiveDate time.Time) ([]models.Account, []models.Outcome, error) {
	if s.matcher == nil {
		return nil, nil, fmt.Errorf("ledger service has no matcher")
	}

	outcomes := make([]models.Outcome, 0, len(records))

	for _, record := range records {
		result, found := s.matcher.Match(record, accounts)
		if !found {
			account := models.NewAccount(record.Name, record.Category, record.Balance, effectiveDate, models.SourceScreenshot)
			accounts = append(accounts, account)
			outcomes = append(outcomes, models.Outcome{
				Action:      models.ActionCreated,
				AccountID:   account.ID,
				AccountName: account.Name,
			})
			s.logger.WithFields(
				logging.Field{Key: "account", Value: account.Name},
				logging.Field{Key: "category", Value: account.Category},
			).Info("Created account")
			continue
		}

		account := &accounts[result.Index]
		account.Balance = record.Balance
		account.UpdatedAt = effectiveDate
		account.AppendHistory(models.HistoryEntry{
			Date:    effectiveDate,
			Balance: record.Balance,
			Source:  models.SourceScreenshot,
		}, s.historyLimit)

		outcome := models.Outcome{
			Action:      models.ActionUpdated,
			AccountID:   account.ID,
			AccountName: account.Name,
			MatchTier:   result.Tier,
		}
		if result.Ambiguous {
			warning := ledgererror.AmbiguousMatchWarning{
				RecordName: record.Name,
				Tier:       result.Tier,
				Candidates: result.Candidates,
			}
			outcome.Warnings = append(outcome.Warnings, warning.String())
		}
		outcomes = append(outcomes, outcome)

		s.logger.WithFields(
			logging.Field{Key: "account", Value: account.Name},
			logging.Field{Key: "tier", Value: result.Tier},
		).Info("Updated account balance")
	}

	return accounts, outcomes, nil
}
