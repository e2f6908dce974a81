package models

import "strings"

// String returns the display label of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsIncome reports whether k is KindIncome.
func (k Kind) IsIncome() bool {
	return k == KindIncome
}

// IsExpense reports whether k is KindExpense.
func (k Kind) IsExpense() bool {
	return k == KindExpense
}

// ParseKind maps free-form user input onto a Kind. Only "income" (any case,
// surrounding spaces ignored) yields KindIncome; everything else is treated
// as an expense.
func ParseKind(s string) Kind {
	if strings.EqualFold(strings.TrimSpace(s), "income") {
		return KindIncome
	}
	return KindExpense
}
