package unique

import "mimir/pair"

// UniqueSlice owns every element of a slice and destroys them back to
// front through the element policy when ownership ends. It is the
// array form of Unique, with indexed access instead of Get.
type UniqueSlice[T any, D Deleter[T]] struct {
	_ noCopy
	p pair.Pair[[]T, D]
}

// NewSlice returns a handle owning s under the default element policy.
func NewSlice[T any](s []T) UniqueSlice[T, DefaultDelete[T]] {
	return UniqueSlice[T, DefaultDelete[T]]{p: pair.New(s, DefaultDelete[T]{})}
}

// NewSliceWith returns a handle owning s under element policy d.
func NewSliceWith[T any, D Deleter[T]](s []T, d D) UniqueSlice[T, D] {
	return UniqueSlice[T, D]{p: pair.New(s, d)}
}

// At returns the address of element i. Index bounds are the caller's
// problem, as with any slice.
func (u *UniqueSlice[T, D]) At(i int) *T {
	return &(*u.p.First())[i]
}

// Len returns the element count, 0 for the empty handle.
func (u *UniqueSlice[T, D]) Len() int {
	return len(*u.p.First())
}

// Valid reports whether the handle owns a slice.
func (u *UniqueSlice[T, D]) Valid() bool { return *u.p.First() != nil }

// Release relinquishes the slice without destroying its elements.
func (u *UniqueSlice[T, D]) Release() []T {
	s := *u.p.First()
	*u.p.First() = nil
	return s
}

// Destroy destroys the elements in reverse order, then drops the
// slice. No-op when the handle is empty.
func (u *UniqueSlice[T, D]) Destroy() {
	s := *u.p.First()
	*u.p.First() = nil
	for i := len(s) - 1; i >= 0; i-- {
		(*u.p.Second()).Delete(&s[i])
	}
}

// Reset destroys the current elements and adopts s. Resetting to the
// slice already owned keeps it.
func (u *UniqueSlice[T, D]) Reset(s []T) {
	old := *u.p.First()
	*u.p.First() = s
	if len(old) != 0 && len(s) != 0 && &old[0] == &s[0] {
		return
	}
	for i := len(old) - 1; i >= 0; i-- {
		(*u.p.Second()).Delete(&old[i])
	}
}

// Move transfers ownership to the returned handle and empties the
// receiver.
func (u *UniqueSlice[T, D]) Move() UniqueSlice[T, D] {
	s := *u.p.First()
	*u.p.First() = nil
	return UniqueSlice[T, D]{p: pair.New(s, *u.p.Second())}
}

// Adopt moves other's slice into the receiver, destroying the
// receiver's current elements first. Adopting from itself changes
// nothing.
func (u *UniqueSlice[T, D]) Adopt(other *UniqueSlice[T, D]) {
	if u == other {
		return
	}
	u.Reset(other.Release())
	*u.p.Second() = *other.p.Second()
}

// Swap exchanges the slices and policies of two handles.
func (u *UniqueSlice[T, D]) Swap(other *UniqueSlice[T, D]) {
	if u == other {
		return
	}
	a, b := u.p.First(), other.p.First()
	*a, *b = *b, *a
	da, db := u.p.Second(), other.p.Second()
	*da, *db = *db, *da
}
