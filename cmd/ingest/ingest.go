// Package ingest contains the command that folds a screenshot's OCR text
// into the account store.
package ingest

import (
	"fmt"
	"os"
	"time"

	"spospordo/snapledger/cmd/root"
	"spospordo/snapledger/internal/dateutils"
	"spospordo/snapledger/internal/models"
	"spospordo/snapledger/internal/report"

	"github.com/spf13/cobra"
)

var (
	inputFile string
	dateStr   string
	dryRun    bool
)

// Cmd is the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a screenshot's OCR text into the account store",
	Long: `Parse the OCR text of a net-worth screenshot into account records, match
them against existing accounts, and update balances and history. Unmatched
records create new accounts.`,
	Run: ingestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "OCR text file to ingest (required)")
	Cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Effective date of the balances (default: now)")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and match without writing the store")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		root.Log.WithError(err).Warn("Failed to mark input flag required")
	}
}

func ingestFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	effectiveDate, err := dateutils.ParseEffectiveDate(dateStr, time.Now())
	if err != nil {
		log.WithError(err).Fatal("Invalid effective date")
	}

	rawText, err := os.ReadFile(inputFile)
	if err != nil {
		log.WithError(err).WithField("file", inputFile).Fatal("Failed to read input file")
	}

	c, err := root.NewContainer()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	records := c.Parser().BuildRecords(string(rawText))
	if len(records) == 0 {
		log.WithField("file", inputFile).Warn("No accounts detected in input")
		fmt.Println("No accounts detected.")
		return
	}

	var (
		outcomes []models.Outcome
		final    []models.Account
	)
	apply := func(accounts []models.Account) ([]models.Account, error) {
		updated, o, err := c.Ledger().Apply(records, accounts, effectiveDate)
		if err != nil {
			return nil, err
		}
		outcomes = o
		final = updated
		return updated, nil
	}

	if dryRun {
		accounts, err := c.Store().Load()
		if err != nil {
			log.WithError(err).Fatal("Failed to load account store")
		}
		if _, err := apply(accounts); err != nil {
			log.WithError(err).Fatal("Failed to apply records")
		}
		log.Info("Dry run: store not written")
	} else {
		if err := c.Store().Update(apply); err != nil {
			log.WithError(err).Fatal("Failed to update account store")
		}
	}

	summary := report.BuildSummary(outcomes, final, effectiveDate)
	summary.Render(os.Stdout)
}
