package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the snapshot in a SQLite database.
type SQLiteStore struct {
	Path   string
	db     *sql.DB
	logger logging.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies pending migrations.
func NewSQLiteStore(path string, logger logging.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &SQLiteStore{Path: path, logger: logger}

	if err := fileutils.EnsureParentDir(path, models.PermissionDirectory); err != nil {
		return nil, s.fail("mkdir", err)
	}

	if err := RunMigrations(path); err != nil {
		return nil, s.fail("migrate", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, s.fail("open", err)
	}
	// One writer at a time is all SQLite handles well.
	db.SetMaxOpenConns(1)
	s.db = db

	logger.Debug("Opened SQLite store", logging.F(logging.FieldFile, path))
	return s, nil
}

func (s *SQLiteStore) fail(op string, err error) error {
	return &PersistError{Backend: BackendSQLite, Op: op, Path: s.Path, Err: err}
}

// Load reads every user ordered by registration position, and every
// transaction ordered by its sequence.
func (s *SQLiteStore) Load(ctx context.Context) (Snapshot, error) {
	if s.db == nil {
		return Snapshot{}, ErrClosed
	}

	var snap Snapshot
	snap.Meta.Storage = BackendSQLite

	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT version, saved_at FROM snapshot_meta WHERE id = 1`).
		Scan(&snap.Meta.Version, &savedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return Snapshot{}, s.fail("load meta", err)
	default:
		if ts, perr := time.Parse(time.RFC3339Nano, savedAt); perr == nil {
			snap.Meta.Timestamp = ts
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT username, credential FROM users ORDER BY position`)
	if err != nil {
		return Snapshot{}, s.fail("load users", err)
	}
	index := make(map[string]int)
	for rows.Next() {
		var u PersistUser
		if err := rows.Scan(&u.Username, &u.Credential); err != nil {
			rows.Close()
			return Snapshot{}, s.fail("scan user", err)
		}
		index[u.Username] = len(snap.Users)
		snap.Users = append(snap.Users, u)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return Snapshot{}, s.fail("load users", err)
	}
	rows.Close()

	txRows, err := s.db.QueryContext(ctx,
		`SELECT id, username, date, amount, category, description, kind FROM transactions ORDER BY seq`)
	if err != nil {
		return Snapshot{}, s.fail("load transactions", err)
	}
	defer txRows.Close()

	for txRows.Next() {
		var (
			t        PersistTransaction
			username string
		)
		if err := txRows.Scan(&t.ID, &username, &t.Date, &t.Amount, &t.Category, &t.Description, &t.Kind); err != nil {
			return Snapshot{}, s.fail("scan transaction", err)
		}
		i, ok := index[username]
		if !ok {
			return Snapshot{}, s.fail("load transactions", fmt.Errorf("transaction %s references unknown user %q", t.ID, username))
		}
		snap.Users[i].Transactions = append(snap.Users[i].Transactions, t)
	}
	if err := txRows.Err(); err != nil {
		return Snapshot{}, s.fail("load transactions", err)
	}

	s.logger.Debug("Loaded snapshot",
		logging.F(logging.FieldFile, s.Path),
		logging.F(logging.FieldCount, snap.TransactionCount()))
	return snap, nil
}

// Save replaces the stored contents with snap in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, snap Snapshot) error {
	if s.db == nil {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.fail("begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM transactions`,
		`DELETE FROM users`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return s.fail("clear", err)
		}
	}

	seq := 0
	for pos, u := range snap.Users {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, credential, position) VALUES (?, ?, ?)`,
			u.Username, u.Credential, pos); err != nil {
			return s.fail("insert user", err)
		}
		for _, t := range u.Transactions {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO transactions (id, username, seq, date, amount, category, description, kind)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, u.Username, seq, t.Date, t.Amount, t.Category, t.Description, t.Kind); err != nil {
				return s.fail("insert transaction", err)
			}
			seq++
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (id, version, saved_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET version = excluded.version, saved_at = excluded.saved_at`,
		SnapshotVersion, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return s.fail("write meta", err)
	}

	if err := tx.Commit(); err != nil {
		return s.fail("commit", err)
	}

	s.logger.Debug("Saved snapshot",
		logging.F(logging.FieldFile, s.Path),
		logging.F(logging.FieldCount, seq))
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
