// Package categories prints the per-category expense breakdown
package categories

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/report"

	"github.com/spf13/cobra"
)

var month string

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Show expenses by category",
	Long:  `Show the logged-in user's expenses for a month grouped by category (case-insensitive).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunWithSession(cmd, false, func(c *container.Container) error {
			m := common.ResolveMonth(month, c.GetLogger())
			b, err := c.GetLedger().CategoryAnalytics(m)
			if err != nil {
				return err
			}
			common.Fprint(cmd, report.FormatCategories(m, b))
			return nil
		})
	},
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default: current month)")
}
