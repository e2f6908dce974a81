package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDataDir points the CLI at a fresh data file and quiet logs.
func setupDataDir(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("FINTRACK_DATA_BACKEND", backend)
	t.Setenv("FINTRACK_DATA_FILE", filepath.Join(dir, "ledger.yaml"))
	t.Setenv("FINTRACK_DATA_SQLITE_PATH", filepath.Join(dir, "ledger.db"))
	t.Setenv("FINTRACK_LOG_LEVEL", "error")
	t.Setenv("FINTRACK_CSV_DELIMITER", ",")
	t.Setenv("FINTRACK_USER", "")
	t.Setenv("FINTRACK_PASSWORD", "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.SharedFlags = root.CommonFlags{}
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&bytes.Buffer{})
	root.Cmd.SetArgs(args)
	err := root.Cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, "fintrack %s", strings.Join(args, " "))
	return out
}

func addTx(t *testing.T, date, amount, category, description, kind string) {
	t.Helper()
	mustRun(t, "add", "-u", "alice", "-p", "pw1",
		"--date", date, "--amount", amount, "--category", category,
		"--description", description, "--kind", kind)
}

func TestCLI_EndToEnd(t *testing.T) {
	for _, backend := range []string{"yaml", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			setupDataDir(t, backend)

			assert.Equal(t, "Registration successful.\n", mustRun(t, "register", "-u", "alice", "-p", "pw1"))
			mustRun(t, "register", "-u", "bob", "-p", "pw2")

			_, err := run(t, "register", "-u", "alice", "-p", "other")
			assert.ErrorIs(t, err, ledger.ErrAlreadyExists)

			assert.Equal(t, "alice\nbob\n", mustRun(t, "users"))

			addTx(t, "2024-01-05", "2000", "Salary", "Jan pay", "Income")
			addTx(t, "2024-01-10", "1200", "Rent", "Jan rent", "Expense")
			addTx(t, "2024-01-15", "25.50", "Food", "Lunch", "Expense")

			out := mustRun(t, "summary", "-u", "alice", "-p", "pw1", "--month", "2024-01")
			assert.Equal(t, "Summary for 2024-01:\n"+
				"  Total Income:  2000.00\n"+
				"  Total Expense: 1225.50\n"+
				"  Savings:       774.50\n", out)

			out = mustRun(t, "categories", "-u", "alice", "-p", "pw1", "--month", "2024-01")
			assert.Equal(t, "Expense by Category for 2024-01:\n"+
				"          food: 25.50\n"+
				"          rent: 1200.00\n", out)

			out = mustRun(t, "recommend", "-u", "alice", "-p", "pw1", "--month", "2024-01")
			assert.Contains(t, out, "Your savings: 774.50\n")
			assert.Contains(t, out, ledger.MsgHealthySavings)
			assert.Contains(t, out, ledger.HighSpendingLine("rent"))

			out = mustRun(t, "list", "-u", "alice", "-p", "pw1")
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, 4)
			assert.Equal(t, "  2024-01-15 |      25.50 |         Food |    Expense | Lunch", lines[3])

			// bob sees an empty history
			out = mustRun(t, "list", "-u", "bob", "-p", "pw2")
			assert.Equal(t, "No transactions recorded.\n", out)

			out = mustRun(t, "report", "-u", "alice", "-p", "pw1", "--month", "2024-01", "--format", "json", "--output", "")
			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(out), &doc))
			assert.Equal(t, "774.50", doc["savings"])
			assert.Equal(t, "alice", doc["username"])
		})
	}
}

func TestCLI_AuthenticationErrors(t *testing.T) {
	setupDataDir(t, "yaml")
	mustRun(t, "register", "-u", "alice", "-p", "pw1")

	_, err := run(t, "list", "-u", "alice", "-p", "wrong")
	assert.ErrorIs(t, err, ledger.ErrInvalidCredentials)

	_, err = run(t, "list", "-u", "mallory", "-p", "pw1")
	assert.ErrorIs(t, err, ledger.ErrInvalidCredentials)

	_, err = run(t, "add", "--amount", "5", "--category", "Food",
		"--date", "2024-01-01", "--description", "", "--kind", "expense")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing credentials")
}

func TestCLI_EnvCredentials(t *testing.T) {
	setupDataDir(t, "yaml")
	mustRun(t, "register", "-u", "alice", "-p", "pw1")

	t.Setenv("FINTRACK_USER", "alice")
	t.Setenv("FINTRACK_PASSWORD", "pw1")
	out := mustRun(t, "summary", "--month", "2024-03")
	assert.Contains(t, out, "Summary for 2024-03:")
}

func TestCLI_ExportImport(t *testing.T) {
	dir := setupDataDir(t, "yaml")
	mustRun(t, "register", "-u", "alice", "-p", "pw1")
	mustRun(t, "register", "-u", "bob", "-p", "pw2")
	addTx(t, "2024-01-05", "2000", "Salary", "Jan pay", "income")
	addTx(t, "2024-01-10", "1200", "Rent", "Jan rent", "expense")

	csvPath := filepath.Join(dir, "export", "alice.csv")
	mustRun(t, "export", "-u", "alice", "-p", "pw1", "--output", csvPath)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "ID,Date,Amount,Category,Description,Kind\n"))

	out := mustRun(t, "import", "-u", "bob", "-p", "pw2", "--input", csvPath)
	assert.Equal(t, "Imported 2 transactions.\n", out)

	out = mustRun(t, "summary", "-u", "bob", "-p", "pw2", "--month", "2024-01")
	assert.Contains(t, out, "Savings:       800.00")

	// A bad row aborts the import without saving anything.
	badPath := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(badPath,
		[]byte("Date,Amount,Category,Description,Kind\n2024-01-20,5,Food,ok,expense\n2024-01-21,abc,Food,bad,expense\n"), 0600))
	_, err = run(t, "import", "-u", "bob", "-p", "pw2", "--input", badPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import aborted after 1 rows")

	out = mustRun(t, "summary", "-u", "bob", "-p", "pw2", "--month", "2024-01")
	assert.Contains(t, out, "Total Expense: 1200.00")

	out = mustRun(t, "export", "-u", "bob", "-p", "pw2", "--output", "-")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestCLI_ReportOutputCreatesDirectories(t *testing.T) {
	dir := setupDataDir(t, "yaml")
	mustRun(t, "register", "-u", "alice", "-p", "pw1")
	addTx(t, "2024-01-05", "2000", "Salary", "Jan pay", "income")

	reportPath := filepath.Join(dir, "reports", "2024", "january.yaml")
	out := mustRun(t, "report", "-u", "alice", "-p", "pw1", "--month", "2024-01",
		"--format", "yaml", "--output", reportPath)
	assert.Empty(t, out)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "username: alice")
	assert.Contains(t, string(data), "total_income: \"2000.00\"")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
