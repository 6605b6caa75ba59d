// Package registry interns shared handles by key: every caller asking
// for the same key shares one object for as long as any strong handle
// lives. The registry itself holds only weak units, so it never keeps
// an object alive on its own. Single goroutine, like the handles it
// stores.
package registry

import "mimir/rc"

// Registry maps keys to weakly-held shared objects.
type Registry[K comparable, T any] struct {
	entries map[K]rc.Weak[T]
}

func New[K comparable, T any]() *Registry[K, T] {
	return &Registry[K, T]{entries: make(map[K]rc.Weak[T])}
}

// GetOrCreate returns a live handle for key, calling create only when
// no live object exists. An error from create propagates unchanged and
// leaves no entry behind.
func (r *Registry[K, T]) GetOrCreate(key K, create func() (rc.Shared[T], error)) (rc.Shared[T], error) {
	if w, ok := r.entries[key]; ok {
		s := w.Lock()
		if s.Valid() {
			return s, nil
		}
		// The previous object expired; drop the stale registration.
		s.Release()
		w.Release()
		delete(r.entries, key)
	}

	s, err := create()
	if err != nil {
		return rc.Shared[T]{}, err
	}
	r.entries[key] = s.Downgrade()
	return s, nil
}

// Lookup returns a live handle for key without creating one.
func (r *Registry[K, T]) Lookup(key K) (rc.Shared[T], bool) {
	w, ok := r.entries[key]
	if !ok {
		return rc.Shared[T]{}, false
	}
	s := w.Lock()
	if !s.Valid() {
		s.Release()
		return rc.Shared[T]{}, false
	}
	return s, true
}

// Remove drops key's entry regardless of liveness. Handles already
// held by callers stay valid; the object just stops being findable.
func (r *Registry[K, T]) Remove(key K) bool {
	w, ok := r.entries[key]
	if !ok {
		return false
	}
	w.Release()
	delete(r.entries, key)
	return true
}

// Sweep drops every expired entry and reports how many went.
func (r *Registry[K, T]) Sweep() int {
	n := 0
	for k, w := range r.entries {
		if w.Expired() {
			w.Release()
			delete(r.entries, k)
			n++
		}
	}
	return n
}

// Clear drops every entry, expired or not.
func (r *Registry[K, T]) Clear() {
	for k, w := range r.entries {
		w.Release()
		delete(r.entries, k)
	}
}

func (r *Registry[K, T]) Len() int { return len(r.entries) }
