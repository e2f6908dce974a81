// Package ledger implements the single-session finance ledger: account
// registration, login, transaction recording and the monthly analytics
// answered for the logged-in account.
//
// A Ledger is not safe for concurrent use. It performs no I/O and never logs;
// every failure is returned to the caller.
package ledger

import (
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Ledger owns every account and tracks at most one logged-in user.
type Ledger struct {
	accounts map[string]*Account
	order    []string
	// session is a key into accounts, empty when nobody is logged in.
	session string
}

// New returns an empty ledger with no session.
func New() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Register creates an account. It fails with ErrAlreadyExists when the
// username is taken; the ledger is left unchanged in that case.
func (l *Ledger) Register(username, credential string) error {
	if _, exists := l.accounts[username]; exists {
		return &AccountError{Op: "register", Username: username, Err: ErrAlreadyExists}
	}
	l.accounts[username] = newAccount(username, credential)
	l.order = append(l.order, username)
	return nil
}

// Login opens a session for username. On failure the current session, if
// any, is kept.
func (l *Ledger) Login(username, credential string) error {
	acc, ok := l.accounts[username]
	if !ok || !acc.matches(credential) {
		return &AccountError{Op: "login", Username: username, Err: ErrInvalidCredentials}
	}
	l.session = username
	return nil
}

// Logout ends the current session.
func (l *Ledger) Logout() {
	l.session = ""
}

// CurrentUser returns the logged-in username.
func (l *Ledger) CurrentUser() (string, bool) {
	if l.session == "" {
		return "", false
	}
	return l.session, true
}

// ListUsernames returns every username in registration order.
func (l *Ledger) ListUsernames() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

func (l *Ledger) current(op string) (*Account, error) {
	if l.session == "" {
		return nil, &SessionError{Operation: op}
	}
	return l.accounts[l.session], nil
}

// RecordTransaction appends a new entry to the logged-in account's history.
// Date and amount are stored as given.
func (l *Ledger) RecordTransaction(date string, amount decimal.Decimal, category, description string, kind models.Kind) (models.Transaction, error) {
	acc, err := l.current("record transaction")
	if err != nil {
		return models.Transaction{}, err
	}
	t := models.NewTransaction(date, amount, category, description, kind)
	acc.AddTransaction(t)
	return t, nil
}

// Transactions returns the logged-in account's history.
func (l *Ledger) Transactions() ([]models.Transaction, error) {
	acc, err := l.current("list transactions")
	if err != nil {
		return nil, err
	}
	return acc.Transactions(), nil
}

// TransactionLines returns the logged-in account's history as display lines.
func (l *Ledger) TransactionLines() ([]string, error) {
	acc, err := l.current("list transactions")
	if err != nil {
		return nil, err
	}
	return acc.TransactionLines(), nil
}

// MonthlySummary totals the logged-in account's month.
func (l *Ledger) MonthlySummary(month string) (models.MonthlySummary, error) {
	acc, err := l.current("monthly summary")
	if err != nil {
		return models.MonthlySummary{}, err
	}
	return acc.MonthlySummary(month), nil
}

// CategoryAnalytics breaks down the logged-in account's month by category.
func (l *Ledger) CategoryAnalytics(month string) (models.CategoryBreakdown, error) {
	acc, err := l.current("category analytics")
	if err != nil {
		return nil, err
	}
	return acc.CategoryAnalytics(month), nil
}

// Recommendations returns advice for the logged-in account's month.
func (l *Ledger) Recommendations(month string) ([]string, error) {
	acc, err := l.current("recommendations")
	if err != nil {
		return nil, err
	}
	return acc.Recommendations(month), nil
}
