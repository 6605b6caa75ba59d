package rc

import "errors"

// ErrDangling reports a promotion attempt on an object that is no
// longer strongly referenced.
var ErrDangling = errors.New("rc: weak reference is dangling")

// Weak observes a reference-counted object without keeping it alive.
// The zero value observes nothing. As with Shared, a raw struct copy
// shares its source's registration; Clone adds one.
type Weak[T any] struct {
	obj *T
	ctl control
}

// Clone returns a new observer on the same block.
func (w *Weak[T]) Clone() Weak[T] {
	if w.ctl != nil {
		w.ctl.refs().weak++
	}
	return Weak[T]{obj: w.obj, ctl: w.ctl}
}

// Move transfers the registration to the returned observer and nulls
// the receiver.
func (w *Weak[T]) Move() Weak[T] {
	out := *w
	*w = Weak[T]{}
	return out
}

// Release returns this observer's weak unit, freeing the block once
// nothing at all refers to it. Releasing a null observer is a no-op.
func (w *Weak[T]) Release() {
	c := w.ctl
	*w = Weak[T]{}
	if c != nil {
		releaseWeak(c)
	}
}

// Assign makes the receiver observe other's block, dropping its old
// registration. Assigning an observer to itself changes nothing.
func (w *Weak[T]) Assign(other *Weak[T]) {
	if w == other {
		return
	}
	next := other.Clone()
	old := *w
	*w = next
	old.Release()
}

// Adopt moves other's registration into the receiver, dropping the
// receiver's previous one. Adopting from itself changes nothing.
func (w *Weak[T]) Adopt(other *Weak[T]) {
	if w == other {
		return
	}
	old := *w
	*w = *other
	*other = Weak[T]{}
	old.Release()
}

// Swap exchanges two registrations without touching counters.
func (w *Weak[T]) Swap(other *Weak[T]) {
	*w, *other = *other, *w
}

// Expired reports whether the observed object is gone, or was never
// there.
func (w *Weak[T]) Expired() bool {
	return w.ctl == nil || w.ctl.refs().strong == 0
}

// UseCount returns the observed block's strong count, 0 when unbound.
func (w *Weak[T]) UseCount() int {
	if w.ctl == nil {
		return 0
	}
	return w.ctl.refs().strong
}

// Lock promotes the observer into an owning handle, or returns the
// null handle when the object is already gone. Lock never yields a
// handle to a destroyed object.
func (w *Weak[T]) Lock() Shared[T] {
	if w.ctl == nil || w.ctl.refs().strong == 0 {
		return Shared[T]{}
	}
	w.ctl.refs().strong++
	return Shared[T]{obj: w.obj, ctl: w.ctl}
}

// Upgrade is the erroring promotion: like Lock, but a dead or unbound
// observer yields ErrDangling instead of a silent null handle.
func (w *Weak[T]) Upgrade() (Shared[T], error) {
	if w.ctl == nil || w.ctl.refs().strong == 0 {
		return Shared[T]{}, ErrDangling
	}
	w.ctl.refs().strong++
	return Shared[T]{obj: w.obj, ctl: w.ctl}, nil
}
