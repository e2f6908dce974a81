// Package report renders a full monthly report
package report

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	monthly "fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/validation"

	"github.com/spf13/cobra"
)

var (
	month  string
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Render a monthly report",
	Long:  `Render the summary, category breakdown and recommendations of a month as text, json or yaml.`,
	Args:  cobra.NoArgs,
	RunE:  reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default: current month)")
	Cmd.Flags().StringVarP(&format, "format", "f", monthly.FormatText, "Output format: text, json or yaml")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to this file instead of stdout")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidOutputFormat(format, monthly.FormatText, monthly.FormatJSON, monthly.FormatYAML); err != nil {
		return err
	}
	return common.RunWithSession(cmd, false, func(c *container.Container) error {
		r, err := monthly.Build(c.GetLedger(), common.ResolveMonth(month, c.GetLogger()))
		if err != nil {
			return err
		}
		out, err := c.GetReportGenerator().Generate(r, format)
		if err != nil {
			return err
		}
		if output == "" {
			common.Fprint(cmd, string(out))
			return nil
		}
		if err := fileutils.EnsureParentDir(output, models.PermissionDirectory); err != nil {
			return err
		}
		if err := fileutils.WriteFileAtomic(output, out, models.PermissionExportFile); err != nil {
			return err
		}
		c.GetLogger().Info("Report written",
			logging.F(logging.FieldFile, output),
			logging.F(logging.FieldFormat, format))
		return nil
	})
}
