package ledger

import (
	"testing"

	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	l := New()
	require.NoError(t, l.Register("alice", "pw1"))
	require.NoError(t, l.Register("bob", "pw2"))
	require.NoError(t, l.Login("alice", "pw1"))
	record(t, l, "2024-01-15", "25.50", "Food", models.KindExpense)
	record(t, l, "2024-01-01", "2000", "Salary", models.KindIncome)

	snap := l.Snapshot()
	require.Len(t, snap.Users, 2)
	assert.Equal(t, "alice", snap.Users[0].Username)
	assert.Equal(t, "25.5", snap.Users[0].Transactions[0].Amount)
	assert.Equal(t, "Income", snap.Users[0].Transactions[1].Kind)
	assert.Empty(t, snap.Users[1].Transactions)

	restored := New()
	require.NoError(t, restored.Restore(snap))
	assert.Equal(t, []string{"alice", "bob"}, restored.ListUsernames())

	_, ok := restored.CurrentUser()
	assert.False(t, ok, "restore never opens a session")

	require.NoError(t, restored.Login("alice", "pw1"))
	want, err := l.Transactions()
	require.NoError(t, err)
	got, err := restored.Transactions()
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].ID(), got[i].ID())
		assert.Equal(t, want[i].DisplayText(), got[i].DisplayText())
	}
}

func TestRestore_ClearsSession(t *testing.T) {
	l := loggedIn(t, "alice")
	require.NoError(t, l.Restore(store.Snapshot{Users: []store.PersistUser{{Username: "alice", Credential: "pw"}}}))
	_, ok := l.CurrentUser()
	assert.False(t, ok)
}

func TestRestore_RejectsBadSnapshots(t *testing.T) {
	tests := []struct {
		name string
		snap store.Snapshot
	}{
		{
			name: "duplicate username",
			snap: store.Snapshot{Users: []store.PersistUser{
				{Username: "x", Credential: "1"},
				{Username: "x", Credential: "2"},
			}},
		},
		{
			name: "bad amount",
			snap: store.Snapshot{Users: []store.PersistUser{
				{Username: "x", Credential: "1", Transactions: []store.PersistTransaction{
					{ID: "1", Date: "2024-01-01", Amount: "ten", Category: "Food", Kind: "Expense"},
				}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := loggedIn(t, "alice")
			record(t, l, "2024-01-01", "1", "Food", models.KindExpense)

			err := l.Restore(tt.snap)
			require.Error(t, err)
			var rerr *RestoreError
			assert.ErrorAs(t, err, &rerr)

			// Untouched, including the session.
			assert.Equal(t, []string{"alice"}, l.ListUsernames())
			txs, err := l.Transactions()
			require.NoError(t, err)
			assert.Len(t, txs, 1)
		})
	}
}

func TestRestore_LenientKind(t *testing.T) {
	l := New()
	require.NoError(t, l.Restore(store.Snapshot{Users: []store.PersistUser{
		{Username: "x", Credential: "1", Transactions: []store.PersistTransaction{
			{ID: "1", Date: "2024-01-01", Amount: "5", Category: "a", Kind: "INCOME"},
			{ID: "2", Date: "2024-01-01", Amount: "3", Category: "b", Kind: "refund"},
		}},
	}}))
	require.NoError(t, l.Login("x", "1"))

	s, err := l.MonthlySummary("2024-01")
	require.NoError(t, err)
	assert.Equal(t, "5.00", models.FormatAmount(s.TotalIncome))
	assert.Equal(t, "3.00", models.FormatAmount(s.TotalExpense))
}
