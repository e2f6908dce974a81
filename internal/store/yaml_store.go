package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"gopkg.in/yaml.v3"
)

// YAMLStore keeps the snapshot in a single YAML file.
type YAMLStore struct {
	Path   string
	logger logging.Logger
}

// NewYAMLStore creates a store backed by the YAML file at path.
func NewYAMLStore(path string, logger logging.Logger) *YAMLStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &YAMLStore{Path: path, logger: logger}
}

func (s *YAMLStore) fail(op string, err error) error {
	return &PersistError{Backend: BackendYAML, Op: op, Path: s.Path, Err: err}
}

// Load reads the snapshot. A missing file yields an empty snapshot.
func (s *YAMLStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Data file not found, starting empty", logging.F(logging.FieldFile, s.Path))
			return Snapshot{}, nil
		}
		return Snapshot{}, s.fail("read", err)
	}

	if err := validation.CheckFilePermissions(s.Path); err != nil {
		s.logger.Warn("Data file holds credentials and is readable by others",
			logging.F(logging.FieldFile, s.Path),
			logging.F(logging.FieldError, err.Error()))
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, s.fail("decode", err)
	}

	s.logger.Debug("Loaded snapshot",
		logging.F(logging.FieldFile, s.Path),
		logging.F(logging.FieldCount, snap.TransactionCount()))
	return snap, nil
}

// Save writes the snapshot to a temporary file and renames it into place.
func (s *YAMLStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap.Meta.Storage = BackendYAML
	snap.Meta.Version = SnapshotVersion
	snap.Meta.Timestamp = time.Now().UTC()

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return s.fail("encode", err)
	}

	if err := fileutils.EnsureParentDir(s.Path, models.PermissionDirectory); err != nil {
		return s.fail("mkdir", err)
	}
	if err := fileutils.WriteFileAtomic(s.Path, data, models.PermissionDataFile); err != nil {
		return s.fail("write", err)
	}

	s.logger.Debug("Saved snapshot",
		logging.F(logging.FieldFile, s.Path),
		logging.F(logging.FieldCount, snap.TransactionCount()))
	return nil
}

// Close is a no-op for the file store.
func (s *YAMLStore) Close() error {
	return nil
}

// String implements fmt.Stringer.
func (s *YAMLStore) String() string {
	return fmt.Sprintf("yaml:%s", s.Path)
}
