package store

import (
	"errors"
	"fmt"
	"io"

	"github.com/cockroachdb/pebble"
)

var (
	// ErrNotFound reports a key with no value in the store or view.
	ErrNotFound = errors.New("store: key not found")

	// ErrViewsOpen reports a Close attempted while views are live.
	ErrViewsOpen = errors.New("store: views still open")
)

// Store is a pebble-backed key/value store. Writes go straight to the
// database; reads either hit the live state or a pinned View.
type Store struct {
	db    *pebble.DB
	views int
}

// Open opens or creates the database under dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close shuts the database down. It fails with ErrViewsOpen while any
// view handle is still live, since closing under a snapshot would
// leave the view dangling.
func (s *Store) Close() error {
	if s.views != 0 {
		return fmt.Errorf("%w: %d live", ErrViewsOpen, s.views)
	}
	return s.db.Close()
}

// Views reports how many views are currently pinned.
func (s *Store) Views() int { return s.views }

// Set durably writes key to val.
func (s *Store) Set(key, val []byte) error {
	return s.db.Set(key, val, pebble.Sync)
}

// Delete durably removes key.
func (s *Store) Delete(key []byte) error {
	return s.db.Delete(key, pebble.Sync)
}

// Get returns a copy of key's current value.
func (s *Store) Get(key []byte) ([]byte, error) {
	return copyVal(s.db.Get(key))
}

// copyVal detaches a pebble read result from its closer: the value is
// copied out before the closer runs, and pebble's not-found is mapped
// onto the package sentinel.
func copyVal(val []byte, closer io.Closer, err error) ([]byte, error) {
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	out := make([]byte, len(val))
	copy(out, val)
	if cerr := closer.Close(); cerr != nil {
		return nil, cerr
	}
	return out, nil
}
