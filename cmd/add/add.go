// Package add records a transaction for the logged-in user
package add

import (
	"fmt"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/spf13/cobra"
)

var (
	date        string
	amount      string
	category    string
	description string
	kind        string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long: `Record an income or expense transaction for the logged-in user.
Any kind other than "income" (case-insensitive) is recorded as an expense.`,
	Args: cobra.NoArgs,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date as YYYY-MM-DD (default: today)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Transaction category")
	Cmd.Flags().StringVarP(&description, "description", "n", "", "Transaction description")
	Cmd.Flags().StringVarP(&kind, "kind", "k", "expense", "Transaction kind: income or expense")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("category")
}

func addFunc(cmd *cobra.Command, args []string) error {
	value, err := models.ParseAmount(amount)
	if err != nil {
		return err
	}

	return common.RunWithSession(cmd, true, func(c *container.Container) error {
		when := dateutils.Today()
		if date != "" {
			normalized, err := dateutils.Normalize(date)
			if err != nil {
				c.GetLogger().Warn("Keeping unrecognized date as given", logging.F(logging.FieldDate, date))
			}
			when = normalized
		}
		t, err := c.GetLedger().RecordTransaction(when, value, category, description, models.ParseKind(kind))
		if err != nil {
			return err
		}
		c.GetLogger().Info("Transaction recorded",
			logging.F(logging.FieldTransactionID, t.ID()),
			logging.F(logging.FieldKind, t.Kind().String()),
			logging.F(logging.FieldCategory, t.Category()))
		common.Fprint(cmd, fmt.Sprintf("Transaction added.\n%s\n", t.DisplayText()))
		return nil
	})
}
