// Package root contains the root command for the application.
package root

import (
	"spospordo/snapledger/internal/common"
	"spospordo/snapledger/internal/config"
	"spospordo/snapledger/internal/container"
	"spospordo/snapledger/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	StorePath string
	RulesFile string
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// SharedFlags holds persistent flag values accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "snapledger",
		Short: "Track account balances from net-worth app screenshots.",
		Long: `snapledger parses the OCR text of a net-worth app screenshot into account
balances, matches them against your saved accounts, and keeps an encrypted
balance history per account.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to snapledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			applyFlagOverrides(cfg)

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefault(Log)
			common.SetLogger(Log)
			Config = cfg
		},
	}

	// Config is the loaded application configuration, set by PersistentPreRun.
	Config *config.Config
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.StorePath, "store", "s", "", "Account store file (overrides config)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.RulesFile, "rules", "r", "", "Parsing rules YAML file (overrides config)")
}

// NewContainer builds the application container from the loaded config.
func NewContainer() (*container.Container, error) {
	return container.NewContainer(Config)
}

func applyFlagOverrides(cfg *config.Config) {
	if SharedFlags.StorePath != "" {
		cfg.Store.Path = SharedFlags.StorePath
	}
	if SharedFlags.RulesFile != "" {
		cfg.Rules.File = SharedFlags.RulesFile
	}
}
