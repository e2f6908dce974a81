// Package list prints the logged-in user's transaction history
package list

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded transactions",
	Long:  `List every transaction of the logged-in user in the order they were recorded.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunWithSession(cmd, false, func(c *container.Container) error {
			lines, err := c.GetLedger().TransactionLines()
			if err != nil {
				return err
			}
			common.Fprint(cmd, report.FormatTransactions(lines))
			return nil
		})
	},
}
