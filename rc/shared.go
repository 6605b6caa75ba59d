package rc

// Shared is an owning handle over a reference-counted object. The zero
// value owns nothing.
//
// Copying the struct does not add a reference: a raw copy and its
// source share one ownership unit, and exactly one of the two may
// Release it. Clone is the counted copy.
//
// Two handles compare equal with == when they observe the same pointer
// through the same control block. Aliased handles hanging off different
// blocks stay unequal even when Get matches.
type Shared[T any] struct {
	obj *T
	ctl control
}

// NewShared adopts ptr behind a fresh pointer-backed control block with
// a strong count of one. When *T embeds SelfRef[T], the object is wired
// to hand out handles to itself. A nil ptr still counts: the handle is
// not Valid but owns its block, and teardown destroys nothing.
func NewShared[T any](ptr *T) Shared[T] {
	return NewSharedDeleter[T](ptr, nil)
}

// NewSharedDeleter is NewShared with a custom deleter. A nil drop means
// the default Finalize. The deleter runs at destruction even when ptr
// is nil.
func NewSharedDeleter[T any](ptr *T, drop Deleter[T]) Shared[T] {
	if drop == nil {
		drop = Finalize[T]
	}
	s := Shared[T]{obj: ptr, ctl: newPtrBlock(ptr, drop)}
	bindSelfRef(&s)
	return s
}

// Make constructs v inside its own control block, so object and
// metadata share a single allocation. Self-reference wiring applies as
// in NewShared.
func Make[T any](v T) Shared[T] {
	b := newInlineBlock[T]()
	b.val = v
	live.Objects++
	s := Shared[T]{obj: &b.val, ctl: b}
	bindSelfRef(&s)
	return s
}

// MakeWith is Make for types that must be built against their final
// address. init runs on the block's own storage. If init panics, the
// block is retired before the panic continues, so nothing leaks.
func MakeWith[T any](init func(*T)) Shared[T] {
	b := newInlineBlock[T]()
	done := false
	defer func() {
		if !done {
			b.freeBlock()
		}
	}()
	if init != nil {
		init(&b.val)
	}
	done = true
	live.Objects++
	s := Shared[T]{obj: &b.val, ctl: b}
	bindSelfRef(&s)
	return s
}

// Alias returns a handle that shares ownership with owner while
// observing view, for holding onto part of a larger owned object.
// Releasing the alias returns a unit of owner's block; view itself is
// never destroyed by the alias. With a null owner the result observes
// view without any block: a legal handle whose UseCount stays 0.
func Alias[V, T any](owner *Shared[T], view *V) Shared[V] {
	if owner.ctl == nil {
		return Shared[V]{obj: view}
	}
	owner.ctl.refs().strong++
	return Shared[V]{obj: view, ctl: owner.ctl}
}

// bindSelfRef wires the object's SelfRef when the managed type embeds
// one. Only construction over a fresh, non-nil object binds; Clone,
// Move and Reset never re-wire.
func bindSelfRef[T any](s *Shared[T]) {
	if s.obj == nil {
		return
	}
	if b, ok := any(s.obj).(interface{ bindSelf(*Shared[T]) }); ok {
		b.bindSelf(s)
	}
}

// Get returns the observed pointer, nil for the null handle.
func (s *Shared[T]) Get() *T { return s.obj }

// Valid reports whether the handle observes a non-nil object.
func (s *Shared[T]) Valid() bool { return s.obj != nil }

// UseCount returns the block's strong count, 0 for the null handle.
func (s *Shared[T]) UseCount() int {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.refs().strong
}

// Clone returns a new owning handle on the same object, raising the
// strong count by one.
func (s *Shared[T]) Clone() Shared[T] {
	if s.ctl != nil {
		s.ctl.refs().strong++
	}
	return Shared[T]{obj: s.obj, ctl: s.ctl}
}

// Move transfers the binding to the returned handle and nulls the
// receiver. Counters stay untouched.
func (s *Shared[T]) Move() Shared[T] {
	out := *s
	*s = Shared[T]{}
	return out
}

// Release returns this handle's ownership unit. The object dies when
// the last strong unit goes; the block lives on while weak observers
// remain. Releasing a null handle is a no-op.
func (s *Shared[T]) Release() {
	c := s.ctl
	*s = Shared[T]{}
	if c != nil {
		releaseStrong(c)
	}
}

// Assign makes the receiver share other's binding, releasing whatever
// it held before. Assigning a handle to itself changes nothing.
func (s *Shared[T]) Assign(other *Shared[T]) {
	if s == other {
		return
	}
	next := other.Clone()
	old := *s
	*s = next
	old.Release()
}

// Adopt moves other's binding into the receiver, releasing the
// receiver's previous one. Adopting from itself changes nothing.
func (s *Shared[T]) Adopt(other *Shared[T]) {
	if s == other {
		return
	}
	old := *s
	*s = *other
	*other = Shared[T]{}
	old.Release()
}

// Reset releases the current binding and, for a non-nil ptr, adopts ptr
// behind a fresh pointer-backed block with the default deleter. Unlike
// NewShared, Reset never wires self-reference.
func (s *Shared[T]) Reset(ptr *T) {
	old := *s
	if ptr != nil {
		*s = Shared[T]{obj: ptr, ctl: newPtrBlock(ptr, Finalize[T])}
	} else {
		*s = Shared[T]{}
	}
	old.Release()
}

// Swap exchanges two bindings without touching counters.
func (s *Shared[T]) Swap(other *Shared[T]) {
	*s, *other = *other, *s
}

// Downgrade registers a weak observer on the handle's block. The null
// handle yields a null observer.
func (s *Shared[T]) Downgrade() Weak[T] {
	if s.ctl == nil {
		return Weak[T]{}
	}
	s.ctl.refs().weak++
	return Weak[T]{obj: s.obj, ctl: s.ctl}
}
