package unique

import "mimir/pair"

// noCopy trips go vet's copylocks check on value copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Unique owns at most one object and destroys it exactly once through
// its deleter policy. The zero value owns nothing. Ownership transfers
// with Move, Adopt or Swap and ends with Destroy, Release or Reset;
// plain struct copies are a bug and go vet reports them.
type Unique[T any, D Deleter[T]] struct {
	_ noCopy
	p pair.Pair[*T, D]
}

// New returns a handle owning ptr under the default policy.
func New[T any](ptr *T) Unique[T, DefaultDelete[T]] {
	return Unique[T, DefaultDelete[T]]{p: pair.New(ptr, DefaultDelete[T]{})}
}

// NewWith returns a handle owning ptr under policy d.
func NewWith[T any, D Deleter[T]](ptr *T, d D) Unique[T, D] {
	return Unique[T, D]{p: pair.New(ptr, d)}
}

// Get returns the owned pointer, nil for the empty handle.
func (u *Unique[T, D]) Get() *T { return *u.p.First() }

// Valid reports whether the handle owns an object.
func (u *Unique[T, D]) Valid() bool { return *u.p.First() != nil }

// Deleter returns the address of the policy, for policies with state
// worth reaching.
func (u *Unique[T, D]) Deleter() *D { return u.p.Second() }

// Release relinquishes ownership without destroying, returning the
// owned pointer. The handle is empty afterwards.
func (u *Unique[T, D]) Release() *T {
	ptr := *u.p.First()
	*u.p.First() = nil
	return ptr
}

// Destroy ends the owned object's life now, through the policy. No-op
// when the handle is empty.
func (u *Unique[T, D]) Destroy() {
	if old := *u.p.First(); old != nil {
		*u.p.First() = nil
		(*u.p.Second()).Delete(old)
	}
}

// Reset destroys the currently owned object, if any, then adopts ptr.
// Resetting to the already-owned pointer keeps it.
func (u *Unique[T, D]) Reset(ptr *T) {
	old := *u.p.First()
	*u.p.First() = ptr
	if old != nil && old != ptr {
		(*u.p.Second()).Delete(old)
	}
}

// Move transfers ownership to the returned handle and empties the
// receiver. The policy travels with the object.
func (u *Unique[T, D]) Move() Unique[T, D] {
	ptr := *u.p.First()
	*u.p.First() = nil
	return Unique[T, D]{p: pair.New(ptr, *u.p.Second())}
}

// Adopt moves other's object into the receiver: the receiver's current
// object is destroyed under the receiver's policy, then other's object
// and policy move over. Adopting from itself changes nothing.
func (u *Unique[T, D]) Adopt(other *Unique[T, D]) {
	if u == other {
		return
	}
	u.Reset(other.Release())
	*u.p.Second() = *other.p.Second()
}

// Swap exchanges the objects and policies of two handles.
func (u *Unique[T, D]) Swap(other *Unique[T, D]) {
	if u == other {
		return
	}
	a, b := u.p.First(), other.p.First()
	*a, *b = *b, *a
	da, db := u.p.Second(), other.p.Second()
	*da, *db = *db, *da
}
