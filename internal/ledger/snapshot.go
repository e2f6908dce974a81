package ledger

import (
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"

	"github.com/shopspring/decimal"
)

// Snapshot exports every account, in registration order, with its history
// in insertion order.
func (l *Ledger) Snapshot() store.Snapshot {
	snap := store.Snapshot{Users: make([]store.PersistUser, 0, len(l.order))}
	for _, name := range l.order {
		acc := l.accounts[name]
		u := store.PersistUser{Username: acc.username, Credential: acc.credential}
		for _, t := range acc.history {
			u.Transactions = append(u.Transactions, store.PersistTransaction{
				ID:          t.ID(),
				Date:        t.Date(),
				Amount:      t.Amount().String(),
				Category:    t.Category(),
				Description: t.Description(),
				Kind:        t.Kind().String(),
			})
		}
		snap.Users = append(snap.Users, u)
	}
	return snap
}

// Restore replaces the ledger's contents with snap and clears the session.
// A snapshot with duplicate usernames or unparseable amounts is rejected and
// the ledger is left untouched.
func (l *Ledger) Restore(snap store.Snapshot) error {
	accounts := make(map[string]*Account, len(snap.Users))
	order := make([]string, 0, len(snap.Users))

	for _, u := range snap.Users {
		if _, dup := accounts[u.Username]; dup {
			return &RestoreError{Username: u.Username, Reason: "duplicate username", Err: ErrAlreadyExists}
		}
		acc := newAccount(u.Username, u.Credential)
		for _, pt := range u.Transactions {
			amount, err := decimal.NewFromString(pt.Amount)
			if err != nil {
				return &RestoreError{Username: u.Username, Reason: "invalid amount " + pt.Amount, Err: err}
			}
			acc.AddTransaction(models.RestoreTransaction(
				pt.ID, pt.Date, amount, pt.Category, pt.Description, models.ParseKind(pt.Kind)))
		}
		accounts[u.Username] = acc
		order = append(order, u.Username)
	}

	l.accounts = accounts
	l.order = order
	l.session = ""
	return nil
}
