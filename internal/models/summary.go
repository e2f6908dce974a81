package models

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary holds income and expense totals for one month key.
// Savings is always TotalIncome minus TotalExpense and may be negative.
type MonthlySummary struct {
	Month        string          `json:"month" yaml:"month"`
	TotalIncome  decimal.Decimal `json:"total_income" yaml:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense" yaml:"total_expense"`
	Savings      decimal.Decimal `json:"savings" yaml:"savings"`
}

// IsEmpty returns true when neither income nor expense was recorded
func (s MonthlySummary) IsEmpty() bool {
	return s.TotalIncome.IsZero() && s.TotalExpense.IsZero()
}

// CategoryTotal is the summed expense of one lower-cased category.
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
}

// CategoryBreakdown lists category totals in ascending category order.
type CategoryBreakdown []CategoryTotal

// Total returns the sum of all category totals
func (b CategoryBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ct := range b {
		total = total.Add(ct.Total)
	}
	return total
}

// AsMap returns the breakdown as a category to total mapping
func (b CategoryBreakdown) AsMap() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(b))
	for _, ct := range b {
		out[ct.Category] = ct.Total
	}
	return out
}

// Categories returns the category keys in breakdown order
func (b CategoryBreakdown) Categories() []string {
	out := make([]string, len(b))
	for i, ct := range b {
		out[i] = ct.Category
	}
	return out
}
