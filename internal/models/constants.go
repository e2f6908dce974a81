package models

// Kind discriminates income from expense entries.
type Kind string

// Transaction kinds
const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

// Month keys are the leading YYYY-MM of a transaction date.
const MonthKeyLength = 7

// File permissions
const (
	PermissionDataFile   = 0600
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)
