package rc

// SelfRef lets a managed object hand out owning and observing handles
// to itself. Embed it in the managed type X as SelfRef[X]; the first
// NewShared or Make over the object binds it automatically. Embedding
// any other instantiation leaves the object unwired.
type SelfRef[T any] struct {
	self Weak[T]
}

// SharedFromSelf returns an owning handle to the embedding object, or
// the null handle once the object is no longer strongly owned,
// including from inside its own teardown.
func (m *SelfRef[T]) SharedFromSelf() Shared[T] {
	return m.self.Lock()
}

// WeakFromSelf returns an observer on the embedding object.
func (m *SelfRef[T]) WeakFromSelf() Weak[T] {
	return m.self.Clone()
}

// bindSelf installs the back reference. Construction calls it exactly
// once per fresh object. An object seeded from the value of a wired one
// arrives carrying the source's registration; that unit still belongs
// to the source mixin, so the stale handle is overwritten, not
// released.
func (m *SelfRef[T]) bindSelf(s *Shared[T]) {
	m.self = s.Downgrade()
}

// dropSelf returns the mixin's weak unit by raw decrement during the
// owner's destruction. Only a registration on the dying block is
// returned; a stale one copied in from another object still belongs to
// that object's mixin. The surrounding release cascade re-reads the
// counters afterwards and owns the free decision; a full release here
// would count the block down twice.
func (m *SelfRef[T]) dropSelf(c control) {
	if m.self.ctl != c {
		return
	}
	c.refs().weak--
	m.self = Weak[T]{}
}
