// Package importcsv records transactions read from a CSV file
package importcsv

import (
	"fmt"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/csvio"
	"fjacquet/fintrack/internal/logging"

	"github.com/spf13/cobra"
)

var input string

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from CSV",
	Long: `Import transactions from a CSV file (columns Date, Amount, Category, Description, Kind)
into the logged-in user's history. Nothing is saved if any row is invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunWithSession(cmd, true, func(c *container.Container) error {
			rows, err := csvio.ReadTransactionsFile(input, c.GetConfig().DelimiterRune())
			if err != nil {
				return err
			}
			n, err := csvio.ImportRows(c.GetLedger(), rows)
			if err != nil {
				return fmt.Errorf("import aborted after %d rows: %w", n, err)
			}
			c.GetLogger().Info("Imported transactions",
				logging.F(logging.FieldFile, input),
				logging.F(logging.FieldCount, n))
			common.Fprint(cmd, fmt.Sprintf("Imported %d transactions.\n", n))
			return nil
		})
	},
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file")
	_ = Cmd.MarkFlagRequired("input")
}
