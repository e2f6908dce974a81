package report

import (
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/models"
)

// FormatSummary renders a monthly summary block.
func FormatSummary(s models.MonthlySummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summary for %s:\n", s.Month)
	fmt.Fprintf(&sb, "  Total Income:  %s\n", models.FormatAmount(s.TotalIncome))
	fmt.Fprintf(&sb, "  Total Expense: %s\n", models.FormatAmount(s.TotalExpense))
	fmt.Fprintf(&sb, "  Savings:       %s\n", models.FormatAmount(s.Savings))
	return sb.String()
}

// FormatCategories renders the per-category expense block.
func FormatCategories(month string, b models.CategoryBreakdown) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Expense by Category for %s:\n", month)
	for _, c := range b {
		fmt.Fprintf(&sb, "  %12s: %s\n", c.Category, models.FormatAmount(c.Total))
	}
	return sb.String()
}

// FormatRecommendations renders the recommendation block.
func FormatRecommendations(month string, recs []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Recommendations for %s ===\n", month)
	for _, r := range recs {
		sb.WriteString(r)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTransactions renders a history listing, one line per entry.
func FormatTransactions(lines []string) string {
	if len(lines) == 0 {
		return "No transactions recorded.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%12s | %10s | %12s | %10s | %s\n", "Date", "Amount", "Category", "Type", "Description")
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *MonthlyReport) text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Report for %s\n\n", r.Username)
	sb.WriteString(FormatSummary(r.Summary))
	sb.WriteString("\n")
	sb.WriteString(FormatCategories(r.Month, r.Categories))
	sb.WriteString("\n")
	sb.WriteString(FormatRecommendations(r.Month, r.Recommendations))
	return sb.String()
}
