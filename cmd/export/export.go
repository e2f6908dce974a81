// Package export writes the logged-in user's history to CSV
package export

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/csvio"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV",
	Long:  `Export the logged-in user's transactions to CSV using the configured delimiter.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunWithSession(cmd, false, func(c *container.Container) error {
			txs, err := c.GetLedger().Transactions()
			if err != nil {
				return err
			}
			delim := c.GetConfig().DelimiterRune()
			if output == "" || output == "-" {
				return csvio.WriteTransactions(cmd.OutOrStdout(), txs, delim)
			}
			if fileutils.FileExists(output) {
				c.GetLogger().Info("Overwriting existing file", logging.F(logging.FieldFile, output))
			}
			if err := csvio.WriteTransactionsFile(output, txs, delim); err != nil {
				return err
			}
			c.GetLogger().Info("Exported transactions",
				logging.F(logging.FieldFile, output),
				logging.F(logging.FieldCount, len(txs)))
			return nil
		})
	},
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (default: stdout)")
}
