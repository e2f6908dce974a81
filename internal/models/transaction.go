// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of one income or expense entry.
// Fields are only reachable through accessors so a recorded entry can never
// be altered after it has been appended to an account history.
type Transaction struct {
	id          string
	date        string
	amount      decimal.Decimal
	category    string
	description string
	kind        Kind
}

// NewTransaction creates a transaction with a freshly generated ID.
// Neither the date format nor the amount sign is checked.
func NewTransaction(date string, amount decimal.Decimal, category, description string, kind Kind) Transaction {
	return RestoreTransaction(uuid.NewString(), date, amount, category, description, kind)
}

// RestoreTransaction rebuilds a transaction that already has an ID, typically
// when reloading persisted state.
func RestoreTransaction(id, date string, amount decimal.Decimal, category, description string, kind Kind) Transaction {
	return Transaction{
		id:          id,
		date:        date,
		amount:      amount,
		category:    category,
		description: description,
		kind:        kind,
	}
}

// ID returns the transaction identifier
func (t Transaction) ID() string { return t.id }

// Date returns the transaction date as recorded
func (t Transaction) Date() string { return t.date }

// Amount returns the transaction amount
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Category returns the category label as recorded (original case)
func (t Transaction) Category() string { return t.category }

// Description returns the free-text description
func (t Transaction) Description() string { return t.description }

// Kind returns whether the transaction is an income or an expense
func (t Transaction) Kind() Kind { return t.kind }

// IsIncome returns true if the transaction is an income
func (t Transaction) IsIncome() bool { return t.kind.IsIncome() }

// IsExpense returns true if the transaction is an expense
func (t Transaction) IsExpense() bool { return t.kind.IsExpense() }

// Month returns the month key of the transaction date: its first
// MonthKeyLength characters, or the whole date when it is shorter.
func (t Transaction) Month() string {
	if len(t.date) < MonthKeyLength {
		return t.date
	}
	return t.date[:MonthKeyLength]
}

// InMonth reports whether the transaction belongs to the given month key.
func (t Transaction) InMonth(month string) bool {
	return t.Month() == month
}

// DisplayText renders the transaction as a fixed-width line:
// date, amount (2 decimals), category, kind and description.
func (t Transaction) DisplayText() string {
	return fmt.Sprintf("%12s | %10s | %12s | %10s | %s",
		t.date, FormatAmount(t.amount), t.category, t.kind, t.description)
}
