// Package recommend prints spending recommendations
package recommend

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/report"

	"github.com/spf13/cobra"
)

var month string

// Cmd represents the recommend command
var Cmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show spending recommendations",
	Long:  `Show rule-based savings and spending recommendations for the logged-in user's month.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return common.RunWithSession(cmd, false, func(c *container.Container) error {
			m := common.ResolveMonth(month, c.GetLogger())
			recs, err := c.GetLedger().Recommendations(m)
			if err != nil {
				return err
			}
			common.Fprint(cmd, report.FormatRecommendations(m, recs))
			return nil
		})
	},
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default: current month)")
}
