package store

import "time"

// SnapshotVersion is the current persisted format version.
const SnapshotVersion = 1

// Snapshot is the persisted shape of a ledger: every user in registration
// order, each with their history in insertion order.
type Snapshot struct {
	Meta  Meta          `yaml:"meta" json:"meta"`
	Users []PersistUser `yaml:"users" json:"users"`
}

// Meta describes where and when a snapshot was written.
type Meta struct {
	Storage   string    `yaml:"storage" json:"storage"`
	Version   int       `yaml:"version" json:"version"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
}

// PersistUser is one registered account.
type PersistUser struct {
	Username     string               `yaml:"username" json:"username"`
	Credential   string               `yaml:"credential" json:"credential"`
	Transactions []PersistTransaction `yaml:"transactions,omitempty" json:"transactions,omitempty"`
}

// PersistTransaction is one recorded entry. Amount is kept as a decimal
// string so no precision is lost through YAML or SQLite.
type PersistTransaction struct {
	ID          string `yaml:"id" json:"id"`
	Date        string `yaml:"date" json:"date"`
	Amount      string `yaml:"amount" json:"amount"`
	Category    string `yaml:"category" json:"category"`
	Description string `yaml:"description" json:"description"`
	Kind        string `yaml:"kind" json:"kind"`
}

// TransactionCount returns the total number of transactions across users.
func (s Snapshot) TransactionCount() int {
	n := 0
	for _, u := range s.Users {
		n += len(u.Transactions)
	}
	return n
}

// IsEmpty reports whether the snapshot holds no users.
func (s Snapshot) IsEmpty() bool {
	return len(s.Users) == 0
}
