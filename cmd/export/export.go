// Package export contains the command that writes the account store to CSV.
package export

import (
	"spospordo/snapledger/cmd/root"
	"spospordo/snapledger/internal/common"

	"github.com/spf13/cobra"
)

var (
	outputFile  string
	withHistory bool
)

// Cmd is the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export accounts to CSV",
	Long: `Export the account store to a CSV file: one row per account, or with
--history one row per balance snapshot.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file (required)")
	Cmd.Flags().BoolVar(&withHistory, "history", false, "Export the flattened balance history instead of current balances")
	if err := Cmd.MarkFlagRequired("output"); err != nil {
		root.Log.WithError(err).Warn("Failed to mark output flag required")
	}
}

func exportFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	c, err := root.NewContainer()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	accounts, err := c.Store().Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load account store")
	}

	if withHistory {
		err = common.WriteHistoryCSV(accounts, outputFile)
	} else {
		err = common.WriteAccountsCSV(accounts, outputFile)
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to write CSV")
	}

	log.WithField("file", outputFile).Info("Export completed")
}
