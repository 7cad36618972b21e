// Package summary contains the command that prints balance-sheet totals.
package summary

import (
	"fmt"
	"os"
	"time"

	"spospordo/snapledger/cmd/root"
	"spospordo/snapledger/internal/report"

	"github.com/spf13/cobra"
)

var asJSON bool

// Cmd is the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category totals and net worth",
	Run:   summaryFunc,
}

func init() {
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Output the summary as JSON")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	c, err := root.NewContainer()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	accounts, err := c.Store().Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load account store")
	}

	s := report.BuildSummary(nil, accounts, time.Now())
	if asJSON {
		data, err := s.JSON()
		if err != nil {
			log.WithError(err).Fatal("Failed to render summary")
		}
		fmt.Println(string(data))
		return
	}
	s.Render(os.Stdout)
}
