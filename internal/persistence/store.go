package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Table names a logical record table. Each table is one JSON array file.
type Table string

const (
	TableEmployees Table = "employees"
	TableJobs      Table = "jobs"
	TableSchedule  Table = "schedule"
)

func (t Table) filename() string {
	return string(t) + ".json"
}

// ErrNotFound signals an absent record. Repositories return it so services can
// map it to the resource-specific not-found error.
var ErrNotFound = errors.New("record not found")

// StorageError wraps an underlying I/O failure. The table's prior contents are
// intact when one is returned; callers must re-read before retrying.
type StorageError struct {
	Op    string
	Table Table
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s on table %q: %v", e.Op, e.Table, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store is a file-backed record store: one ordered JSON array per table, one
// mutual-exclusion lock per table. Reads and writes are serialized per table;
// different tables are independent.
type Store struct {
	dir    string
	logger *zap.Logger

	mu    sync.Mutex
	locks map[Table]*sync.Mutex
}

// NewStore creates a store rooted at dir.
func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
		locks:  make(map[Table]*sync.Mutex),
	}
}

func (s *Store) tableLock(table Table) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[table]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[table] = lock
	}
	return lock
}

// Read returns the table contents in insertion order. An absent table yields
// an empty sequence, never an error.
func (s *Store) Read(table Table) ([]json.RawMessage, error) {
	lock := s.tableLock(table)
	lock.Lock()
	defer lock.Unlock()

	return s.readLocked(table)
}

// Write atomically replaces the full table contents.
func (s *Store) Write(table Table, records []json.RawMessage) error {
	lock := s.tableLock(table)
	lock.Lock()
	defer lock.Unlock()

	return s.writeLocked(table, records)
}

// Update applies fn to the table contents and persists the result, holding the
// table lock across the whole read-modify-write. Errors from fn abort the
// update without touching the file.
func (s *Store) Update(table Table, fn func(records []json.RawMessage) ([]json.RawMessage, error)) error {
	lock := s.tableLock(table)
	lock.Lock()
	defer lock.Unlock()

	records, err := s.readLocked(table)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return s.writeLocked(table, updated)
}

func (s *Store) readLocked(table Table) ([]json.RawMessage, error) {
	path := filepath.Join(s.dir, table.filename())
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("table file missing, returning empty table", zap.String("table", string(table)))
			return []json.RawMessage{}, nil
		}
		return nil, &StorageError{Op: "read", Table: table, Err: err}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &StorageError{Op: "read", Table: table, Err: err}
	}
	return records, nil
}

// writeLocked writes to a temp file in the same directory and renames it over
// the table file so a failure never leaves a partially written table.
func (s *Store) writeLocked(table Table, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &StorageError{Op: "write", Table: table, Err: err}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{Op: "write", Table: table, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, table.filename()+".tmp-*")
	if err != nil {
		return &StorageError{Op: "write", Table: table, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "write", Table: table, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "write", Table: table, Err: err}
	}

	path := filepath.Join(s.dir, table.filename())
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "write", Table: table, Err: err}
	}

	s.logger.Debug("wrote table",
		zap.String("table", string(table)),
		zap.Int("records", len(records)),
	)
	return nil
}
