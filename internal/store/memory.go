package store

import (
	"context"
	"time"
)

// MemoryStore keeps the last saved snapshot in memory.
type MemoryStore struct {
	snap   Snapshot
	saves  int
	closed bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the last saved snapshot.
func (m *MemoryStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	if m.closed {
		return Snapshot{}, ErrClosed
	}
	return cloneSnapshot(m.snap), nil
}

// Save replaces the held snapshot.
func (m *MemoryStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.closed {
		return ErrClosed
	}
	snap.Meta.Storage = BackendMemory
	snap.Meta.Version = SnapshotVersion
	snap.Meta.Timestamp = time.Now().UTC()
	m.snap = cloneSnapshot(snap)
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	return m.saves
}

// Close marks the store closed.
func (m *MemoryStore) Close() error {
	m.closed = true
	return nil
}

func cloneSnapshot(s Snapshot) Snapshot {
	out := Snapshot{Meta: s.Meta}
	if s.Users == nil {
		return out
	}
	out.Users = make([]PersistUser, len(s.Users))
	for i, u := range s.Users {
		out.Users[i] = PersistUser{Username: u.Username, Credential: u.Credential}
		if u.Transactions != nil {
			out.Users[i].Transactions = append([]PersistTransaction(nil), u.Transactions...)
		}
	}
	return out
}
