// Package accounts contains the commands for inspecting and renaming
// accounts.
package accounts

import (
	"fmt"
	"os"
	"text/tabwriter"

	"spospordo/snapledger/cmd/root"
	"spospordo/snapledger/internal/currencyutils"
	"spospordo/snapledger/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	accountID string
	newName   string
)

// Cmd is the accounts command. Without a subcommand it lists all accounts.
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List and manage accounts",
	Run:   listFunc,
}

var setNameCmd = &cobra.Command{
	Use:   "set-name",
	Short: "Set or clear an account's display name",
	Long: `Set a cosmetic display name on an account. The display name is used in
output only; matching always uses the original name and its aliases, so a
rename never causes a future ingest to create a duplicate account. An empty
--name clears the display name.`,
	Run: setNameFunc,
}

func init() {
	setNameCmd.Flags().StringVar(&accountID, "id", "", "Account ID (required)")
	setNameCmd.Flags().StringVar(&newName, "name", "", "Display name to set; empty clears it")
	if err := setNameCmd.MarkFlagRequired("id"); err != nil {
		root.Log.WithError(err).Warn("Failed to mark id flag required")
	}

	Cmd.AddCommand(setNameCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	c, err := root.NewContainer()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	accounts, err := c.Store().Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load account store")
	}

	if len(accounts) == 0 {
		fmt.Println("No accounts in store.")
		return
	}

	red := color.New(color.FgRed)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tBALANCE\tUPDATED")
	for i := range accounts {
		account := &accounts[i]
		balance := currencyutils.FormatUSD(account.Balance)
		if account.Category.IsLiability() {
			balance = red.Sprint(balance)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			account.ID,
			account.EffectiveName(),
			account.Category.Label(),
			balance,
			account.UpdatedAt.Format("2006-01-02"),
		)
	}
	if err := w.Flush(); err != nil {
		log.WithError(err).Warn("Failed to flush output")
	}
}

func setNameFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	c, err := root.NewContainer()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	err = c.Store().Update(func(accounts []models.Account) ([]models.Account, error) {
		for i := range accounts {
			if accounts[i].ID != accountID {
				continue
			}
			if newName == "" {
				accounts[i].DisplayName = nil
				log.WithField("account", accounts[i].Name).Info("Cleared display name")
			} else {
				name := newName
				accounts[i].DisplayName = &name
				log.WithField("account", accounts[i].Name).Info("Set display name")
			}
			return accounts, nil
		}
		return nil, fmt.Errorf("no account with ID '%s'", accountID)
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to update account")
	}
}
