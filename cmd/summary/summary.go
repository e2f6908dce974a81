// Package summary prints a monthly income/expense summary
package summary

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/report"

	"github.com/spf13/cobra"
)

var month string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the monthly summary",
	Long:  `Show total income, total expense and savings of the logged-in user for a month.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunWithSession(cmd, false, func(c *container.Container) error {
			s, err := c.GetLedger().MonthlySummary(common.ResolveMonth(month, c.GetLogger()))
			if err != nil {
				return err
			}
			common.Fprint(cmd, report.FormatSummary(s))
			return nil
		})
	},
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default: current month)")
}
