// Package store persists key/value state in pebble and hands out
// consistent read views of it.
//
// A View pins the database at a moment in time. Views are shared
// handles: clone one to pass it around, and the underlying pebble
// snapshot closes exactly when the last handle releases. Cursors walk
// a key range inside a view and carry unique ownership of their pebble
// iterator, so destroying the cursor closes the iterator.
//
// The store refuses to close while views are live, which turns a
// leaked view into a loud error instead of a dangling snapshot.
package store
