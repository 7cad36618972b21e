// Package common provides shared output helpers used by multiple commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// AccountRow is the CSV projection of an account.
type AccountRow struct {
	ID          string          `csv:"id"`
	Name        string          `csv:"name"`
	DisplayName string          `csv:"display_name"`
	Category    models.Category `csv:"category"`
	Balance     decimal.Decimal `csv:"balance"`
	UpdatedAt   string          `csv:"updated_at"`
}

// HistoryRow is the CSV projection of one balance snapshot.
type HistoryRow struct {
	AccountID   string          `csv:"account_id"`
	AccountName string          `csv:"account_name"`
	Date        string          `csv:"date"`
	Balance     decimal.Decimal `csv:"balance"`
	Source      string          `csv:"source"`
}

// WriteAccountsCSV writes one row per account.
func WriteAccountsCSV(accounts []models.Account, csvFile string) error {
	rows := make([]AccountRow, 0, len(accounts))
	for _, account := range accounts {
		displayName := ""
		if account.DisplayName != nil {
			displayName = *account.DisplayName
		}
		rows = append(rows, AccountRow{
			ID:          account.ID,
			Name:        account.Name,
			DisplayName: displayName,
			Category:    account.Category,
			Balance:     account.Balance,
			UpdatedAt:   account.UpdatedAt.Format("2006-01-02"),
		})
	}
	return writeCSV(rows, csvFile)
}

// WriteHistoryCSV writes the flattened balance history, one row per snapshot,
// ordered per account by date ascending.
func WriteHistoryCSV(accounts []models.Account, csvFile string) error {
	var rows []HistoryRow
	for _, account := range accounts {
		for _, entry := range account.History {
			rows = append(rows, HistoryRow{
				AccountID:   account.ID,
				AccountName: account.Name,
				Date:        entry.Date.Format("2006-01-02"),
				Balance:     entry.Balance,
				Source:      string(entry.Source),
			})
		}
	}
	return writeCSV(rows, csvFile)
}

func writeCSV[TRow any](rows []TRow, csvFile string) error {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(rows)},
	).Info("Wrote CSV file")
	return nil
}
