package rc

// Finalizer is implemented by managed types that hold resources beyond
// plain memory. Finalize runs exactly once, when the last strong
// reference lets go.
type Finalizer interface {
	Finalize()
}

// Deleter destroys an object owned through a pointer-backed block.
type Deleter[T any] func(*T)

// Finalize is the default deleter. It runs the object's Finalizer when
// present and leaves storage reclamation to the garbage collector.
// A nil object has nothing to finalize.
func Finalize[T any](p *T) {
	if p == nil {
		return
	}
	if f, ok := any(p).(Finalizer); ok {
		f.Finalize()
	}
}

// counts carries the two ownership tallies of a control block. The
// strong count is the number of owning handles; the weak count is the
// number of observers, not including the strong holders.
type counts struct {
	strong int
	weak   int
	freed  bool
}

// control is the metadata shared by every handle bound to one managed
// object. Exactly two implementations exist: ptrBlock for objects the
// caller allocated, inlineBlock for objects built inside the block.
type control interface {
	refs() *counts
	destroyObject()
	freeBlock()
}

// selfDropper is the teardown half of the SelfRef wiring. destroyObject
// calls it with the dying block so the mixin's weak unit is returned by
// raw decrement, never through a second release cascade.
type selfDropper interface {
	dropSelf(c control)
}

// releaseStrong returns one strong unit. The object dies as soon as the
// last unit goes; the block survives while observers remain. The weak
// count is re-read after destruction, because the object's teardown
// drops the self-reference unit and may release observers of its own.
func releaseStrong(c control) {
	r := c.refs()
	r.strong--
	if r.strong != 0 {
		return
	}
	c.destroyObject()
	if r.weak == 0 && !r.freed {
		c.freeBlock()
	}
}

// releaseWeak returns one weak unit and frees the block once nothing at
// all refers to it.
func releaseWeak(c control) {
	r := c.refs()
	r.weak--
	if r.strong == 0 && r.weak == 0 && !r.freed {
		c.freeBlock()
	}
}

// ptrBlock owns an object that was allocated apart from the block.
type ptrBlock[T any] struct {
	counts
	obj  *T
	drop Deleter[T]
}

func newPtrBlock[T any](obj *T, drop Deleter[T]) *ptrBlock[T] {
	live.Blocks++
	live.Objects++
	return &ptrBlock[T]{counts: counts{strong: 1}, obj: obj, drop: drop}
}

func (b *ptrBlock[T]) refs() *counts { return &b.counts }

func (b *ptrBlock[T]) destroyObject() {
	obj := b.obj
	b.obj = nil
	if obj != nil {
		if d, ok := any(obj).(selfDropper); ok {
			d.dropSelf(b)
		}
	}
	b.drop(obj)
	live.Objects--
}

func (b *ptrBlock[T]) freeBlock() {
	if b.freed {
		panic("rc: control block freed twice")
	}
	b.freed = true
	b.drop = nil
	live.Blocks--
}

// inlineBlock owns an object constructed into the block's own storage,
// so object and metadata share a single allocation.
type inlineBlock[T any] struct {
	counts
	val T
}

func newInlineBlock[T any]() *inlineBlock[T] {
	live.Blocks++
	return &inlineBlock[T]{counts: counts{strong: 1}}
}

func (b *inlineBlock[T]) refs() *counts { return &b.counts }

func (b *inlineBlock[T]) destroyObject() {
	if d, ok := any(&b.val).(selfDropper); ok {
		d.dropSelf(b)
	}
	Finalize(&b.val)
	var zero T
	b.val = zero
	live.Objects--
}

func (b *inlineBlock[T]) freeBlock() {
	if b.freed {
		panic("rc: control block freed twice")
	}
	b.freed = true
	live.Blocks--
}
