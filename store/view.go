package store

import (
	"github.com/cockroachdb/pebble"

	"mimir/logging"
	"mimir/rc"
	"mimir/unique"
)

// View reads the store as it was at Acquire time. Handles to a view
// are shared; the snapshot stays pinned until the last one releases.
type View struct {
	snap  *pebble.Snapshot
	owner *Store
}

// Acquire pins the store's current state and returns the first handle
// to it. Clone the handle to share the view.
func (s *Store) Acquire() rc.Shared[View] {
	s.views++
	return rc.Make(View{snap: s.db.NewSnapshot(), owner: s})
}

// Finalize closes the pinned snapshot and lets the owning store close
// again. Runs exactly once, at the last handle's release.
func (v *View) Finalize() {
	if err := v.snap.Close(); err != nil {
		logging.WithComponent("store").Error("snapshot close failed", "error", err)
	}
	v.owner.views--
}

// Get returns a copy of key's value as of the view.
func (v *View) Get(key []byte) ([]byte, error) {
	return copyVal(v.snap.Get(key))
}

// Cursor walks keys of a view in order. Key and Value return pebble's
// buffers, valid only until the cursor moves again.
type Cursor struct {
	it *pebble.Iterator
}

// OwnedCursor owns a cursor's iterator; Destroy closes it.
type OwnedCursor = unique.Unique[Cursor, unique.DefaultDelete[Cursor]]

// Cursor opens a cursor over [lo, hi) within the view. Destroy it
// before releasing the last view handle.
func (v *View) Cursor(lo, hi []byte) (OwnedCursor, error) {
	it, err := v.snap.NewIter(&pebble.IterOptions{LowerBound: lo, UpperBound: hi})
	if err != nil {
		return OwnedCursor{}, err
	}
	return unique.New(&Cursor{it: it}), nil
}

// Finalize closes the pebble iterator.
func (c *Cursor) Finalize() {
	if err := c.it.Close(); err != nil {
		logging.WithComponent("store").Error("cursor close failed", "error", err)
	}
}

// First moves to the lowest key in range.
func (c *Cursor) First() bool { return c.it.First() }

// Next advances one key.
func (c *Cursor) Next() bool { return c.it.Next() }

// Valid reports whether the cursor sits on a key.
func (c *Cursor) Valid() bool { return c.it.Valid() }

func (c *Cursor) Key() []byte { return c.it.Key() }

func (c *Cursor) Value() []byte { return c.it.Value() }

// Err surfaces any iteration error once the walk is done.
func (c *Cursor) Err() error { return c.it.Error() }
