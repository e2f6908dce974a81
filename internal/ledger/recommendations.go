package ledger

import (
	"fmt"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Recommendation messages.
const (
	MsgNoTransactions = "No transactions found for this month."
	MsgOverspending   = "You are overspending! Consider reducing non-essential costs."
	MsgLowSavings     = "Your savings are low. Try to set at least 20% of income aside."
	MsgHealthySavings = "Great! Your savings are healthy this month."
)

var (
	savingsTarget        = decimal.RequireFromString("0.2")
	highSpendingFraction = decimal.RequireFromString("0.5")
)

// SavingsLine formats the savings figure line.
func SavingsLine(savings decimal.Decimal) string {
	return "Your savings: " + models.FormatAmount(savings)
}

// HighSpendingLine flags a category that dominates the month's expenses.
func HighSpendingLine(category string) string {
	return fmt.Sprintf("High spending in category: %s. Consider optimizing this expense.", category)
}

func recommend(summary models.MonthlySummary, breakdown models.CategoryBreakdown) []string {
	if summary.TotalIncome.IsZero() && summary.TotalExpense.IsZero() {
		return []string{MsgNoTransactions}
	}

	recs := []string{SavingsLine(summary.Savings)}

	switch {
	case summary.Savings.IsNegative():
		recs = append(recs, MsgOverspending)
	case summary.Savings.LessThan(summary.TotalIncome.Mul(savingsTarget)):
		recs = append(recs, MsgLowSavings)
	default:
		recs = append(recs, MsgHealthySavings)
	}

	threshold := summary.TotalExpense.Mul(highSpendingFraction)
	for _, c := range breakdown {
		if c.Total.GreaterThan(threshold) {
			recs = append(recs, HighSpendingLine(c.Category))
		}
	}
	return recs
}
