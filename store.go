package finboard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store owns the on-disk ledger document. It is the only writer; the
// aggregator and views never touch the file. All operations are synchronous
// full-document reads and rewrites, which is fine at this data scale.
type Store struct {
	path string
}

// NewStore creates a store for the document at path. The file does not have
// to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path this store owns.
func (s *Store) Path() string { return s.path }

// Load reads the persisted document and returns the ledger. A missing file
// is an empty ledger. An existing but unreadable document is a
// *CorruptDataError; it is never treated as empty, that would lose the data
// on the next save.
func (s *Store) Load() (*Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger document %q: %w", s.path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		var corrupt *CorruptDataError
		if errors.As(err, &corrupt) && corrupt.Path == "" {
			corrupt.Path = s.path
		}
		return nil, err
	}
	return ledger, nil
}

// Save rewrites the whole document from the ledger. The write goes through a
// temp file in the same directory followed by an atomic rename, so a crash
// mid-write never leaves a truncated document behind.
func (s *Store) Save(ledger *Ledger) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return &StorageWriteError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageWriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageWriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &StorageWriteError{Path: s.path, Err: err}
	}
	return nil
}

// Append validates the transaction, appends it to the in-memory ledger and
// persists the full document. On a persist failure the transaction stays in
// the ledger but the caller is told the document on disk is stale.
func (s *Store) Append(ledger *Ledger, tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	ledger.Append(tx)
	return s.Save(ledger)
}
