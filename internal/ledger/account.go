package ledger

import (
	"sort"
	"strings"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Account is one registered user with their append-only history.
type Account struct {
	username   string
	credential string
	history    []models.Transaction
}

func newAccount(username, credential string) *Account {
	return &Account{username: username, credential: credential}
}

// Username returns the account's immutable username.
func (a *Account) Username() string {
	return a.username
}

func (a *Account) matches(credential string) bool {
	return a.credential == credential
}

// AddTransaction appends t to the history.
func (a *Account) AddTransaction(t models.Transaction) {
	a.history = append(a.history, t)
}

// Transactions returns a copy of the history in insertion order.
func (a *Account) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// TransactionLines renders every history entry with DisplayText.
func (a *Account) TransactionLines() []string {
	lines := make([]string, 0, len(a.history))
	for _, t := range a.history {
		lines = append(lines, t.DisplayText())
	}
	return lines
}

// MonthlySummary totals the entries whose month key equals month exactly.
func (a *Account) MonthlySummary(month string) models.MonthlySummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range a.history {
		if !t.InMonth(month) {
			continue
		}
		if t.IsIncome() {
			income = income.Add(t.Amount())
		} else {
			expense = expense.Add(t.Amount())
		}
	}
	return models.MonthlySummary{
		Month:        month,
		TotalIncome:  income,
		TotalExpense: expense,
		Savings:      income.Sub(expense),
	}
}

// CategoryAnalytics sums the month's expenses per lower-cased category,
// ordered by category key.
func (a *Account) CategoryAnalytics(month string) models.CategoryBreakdown {
	totals := make(map[string]decimal.Decimal)
	for _, t := range a.history {
		if !t.InMonth(month) || !t.IsExpense() {
			continue
		}
		key := strings.ToLower(t.Category())
		totals[key] = totals[key].Add(t.Amount())
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	breakdown := make(models.CategoryBreakdown, 0, len(keys))
	for _, k := range keys {
		breakdown = append(breakdown, models.CategoryTotal{Category: k, Total: totals[k]})
	}
	return breakdown
}

// Recommendations derives rule-based advice for month.
func (a *Account) Recommendations(month string) []string {
	return recommend(a.MonthlySummary(month), a.CategoryAnalytics(month))
}
