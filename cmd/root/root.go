// Package root contains the root command for the application
package root

import (
	"fjacquet/fintrack/internal/config"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	User       string
	Password   string
	ConfigFile string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A personal finance ledger for recording income and expenses.",
		Long: `fintrack records dated income and expense entries per user and derives
monthly summaries, per-category breakdowns and spending recommendations.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
		},
	}

	// SharedFlags holds the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags. Calling it twice is harmless.
func Init() {
	if Cmd.PersistentFlags().Lookup("user") != nil {
		return
	}
	Cmd.PersistentFlags().StringVarP(&SharedFlags.User, "user", "u", "", "Username (defaults to FINTRACK_USER)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Password, "password", "p", "", "Password (defaults to FINTRACK_PASSWORD)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches fintrack.yaml)")
}
